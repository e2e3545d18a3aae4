package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"

	"github.com/roshaneleshaddai/Weekendlyfe/services"
	"github.com/roshaneleshaddai/Weekendlyfe/utils"
)

// buildPlanTestApp wires the save endpoint behind the real access token
// verifier. Conflict validation runs before any storage access, so the
// rejection path needs no database.
func buildPlanTestApp() *iris.Application {
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")
	app := iris.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	plans := app.Party("/api/plans", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware)
	{
		plans.Post("/", SaveWeekendPlan)
	}
	if err := app.Build(); err != nil {
		panic(err)
	}
	return app
}

func signPlanTestToken() string {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 10*time.Minute)
	token, _ := signer.Sign(utils.AccessToken{ID: 1})
	return string(token)
}

func TestSaveWeekendPlanRequiresToken(t *testing.T) {
	app := buildPlanTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/plans", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	if resp.Code == http.StatusOK {
		t.Fatalf("expected non-200 without token, got %d", resp.Code)
	}
}

func TestSaveWeekendPlanRejectsConflicts(t *testing.T) {
	app := buildPlanTestApp()

	body := `{
		"title": "Packed Saturday",
		"plan": {
			"saturday": [
				{"id": "a", "activity": {"title": "Brunch", "durationMin": 90}, "startTime": "10:00"},
				{"id": "b", "activity": {"title": "Museum", "durationMin": 120}, "startTime": "11:00"}
			],
			"sunday": []
		}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/plans", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+signPlanTestToken())
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Error     string              `json:"error"`
		Conflicts []services.Conflict `json:"conflicts"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if payload.Error != "Schedule Conflict" {
		t.Fatalf("error = %q, want Schedule Conflict", payload.Error)
	}
	if len(payload.Conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(payload.Conflicts))
	}

	c := payload.Conflicts[0]
	if c.Day != "saturday" || c.Activity1 != "Brunch" || c.Activity2 != "Museum" {
		t.Fatalf("unexpected conflict: %+v", c)
	}
	if c.Time1 != "10:00 - 11:30" || c.Time2 != "11:00 - 13:00" {
		t.Fatalf("derived end times wrong: %+v", c)
	}
}

func TestSaveWeekendPlanRejectsMalformedTimes(t *testing.T) {
	app := buildPlanTestApp()

	body := `{
		"plan": {
			"saturday": [{"id": "a", "activity": {"title": "Brunch"}, "startTime": "soonish"}],
			"sunday": []
		}
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/plans", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+signPlanTestToken())
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed time, got %d", resp.Code)
	}
}

func TestWeekendSaturday(t *testing.T) {
	cases := []struct {
		now  time.Time
		want string
	}{
		// Wednesday maps to the upcoming Saturday.
		{time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC), "2025-03-15"},
		// Saturday is its own weekend.
		{time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC), "2025-03-15"},
		// Sunday still belongs to the weekend that started yesterday.
		{time.Date(2025, time.March, 16, 22, 0, 0, 0, time.UTC), "2025-03-15"},
		// Monday rolls over to the next weekend.
		{time.Date(2025, time.March, 17, 8, 0, 0, 0, time.UTC), "2025-03-22"},
	}

	for _, c := range cases {
		got := weekendSaturday(c.now).Format("2006-01-02")
		if got != c.want {
			t.Fatalf("weekendSaturday(%v) = %s, want %s", c.now, got, c.want)
		}
	}
}

func TestTopCategoriesFrom(t *testing.T) {
	counts := map[string]int{
		"food":          5,
		"outdoor":       3,
		"entertainment": 3,
		"wellness":      1,
	}

	got := topCategoriesFrom(counts)
	want := []string{"food", "entertainment", "outdoor"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if empty := topCategoriesFrom(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("empty counts must yield an empty slice, got %v", empty)
	}
}
