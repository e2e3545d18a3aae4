package services

import (
	"testing"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
)

func TestToPersistedAssignsPositionalOrder(t *testing.T) {
	local := LocalPlan{
		Saturday: []LocalPlanItem{
			{ID: "a", Activity: RawActivity{Title: "Brunch"}, Order: 7, StartTime: "10:00", EndTime: "11:00"},
			{ID: "b", Activity: RawActivity{Title: "Museum"}, Order: 2, StartTime: "12:00", EndTime: "13:00"},
		},
	}

	saturday, sunday, err := ToPersisted(local)
	if err != nil {
		t.Fatalf("ToPersisted returned error: %v", err)
	}
	if len(sunday) != 0 {
		t.Fatalf("expected empty sunday, got %d items", len(sunday))
	}
	for i, item := range saturday {
		if item.Order != i {
			t.Fatalf("item %d has order %d, want positional index", i, item.Order)
		}
		if item.Day != models.DaySaturday {
			t.Fatalf("item %d day = %q", i, item.Day)
		}
	}
}

func TestToPersistedDerivesEndTime(t *testing.T) {
	local := LocalPlan{
		Sunday: []LocalPlanItem{
			{ID: "a", Activity: RawActivity{Title: "Spa", DurationMin: 90}, StartTime: "14:00"},
			{ID: "b", Activity: RawActivity{Title: "Untimed"}},
		},
	}

	_, sunday, err := ToPersisted(local)
	if err != nil {
		t.Fatalf("ToPersisted returned error: %v", err)
	}

	if sunday[0].EndTime != "15:30" {
		t.Fatalf("derived end time = %q, want 15:30", sunday[0].EndTime)
	}

	// No start time at all gets the default start and the default duration.
	if sunday[1].StartTime != DefaultStartTime {
		t.Fatalf("start time = %q, want %q", sunday[1].StartTime, DefaultStartTime)
	}
	if sunday[1].EndTime != "10:00" {
		t.Fatalf("end time = %q, want 10:00", sunday[1].EndTime)
	}
}

func TestToPersistedRejectsMalformedTimes(t *testing.T) {
	local := LocalPlan{
		Saturday: []LocalPlanItem{
			{ID: "a", Activity: RawActivity{Title: "Brunch"}, StartTime: "soonish"},
		},
	}

	if _, _, err := ToPersisted(local); err == nil {
		t.Fatal("expected error for malformed start time")
	}

	local = LocalPlan{
		Saturday: []LocalPlanItem{
			{ID: "a", Activity: RawActivity{Title: "Brunch"}, StartTime: "10:00", EndTime: "11:99"},
		},
	}
	if _, _, err := ToPersisted(local); err == nil {
		t.Fatal("expected error for malformed end time")
	}
}

func TestToLocalSortsByStoredOrder(t *testing.T) {
	plan := &models.WeekendPlan{}
	err := plan.SetDayItems(models.DaySaturday, []models.PlanItem{
		{ID: "b", Activity: models.ActivityData{Title: "Second"}, Day: models.DaySaturday, Order: 1, StartTime: "12:00", EndTime: "13:00"},
		{ID: "a", Activity: models.ActivityData{Title: "First"}, Day: models.DaySaturday, Order: 0, StartTime: "10:00", EndTime: "11:00"},
	})
	if err != nil {
		t.Fatalf("SetDayItems returned error: %v", err)
	}

	local := ToLocal(plan)
	if len(local.Saturday) != 2 {
		t.Fatalf("expected 2 saturday items, got %d", len(local.Saturday))
	}
	if local.Saturday[0].ID != "a" || local.Saturday[1].ID != "b" {
		t.Fatalf("items not ordered by stored Order: %q, %q", local.Saturday[0].ID, local.Saturday[1].ID)
	}
	if local.Sunday == nil || len(local.Sunday) != 0 {
		t.Fatalf("expected empty non-nil sunday, got %v", local.Sunday)
	}
}

func TestRoundTripPreservesAnnotations(t *testing.T) {
	cost := 450.0
	rating := 5
	local := LocalPlan{
		Saturday: []LocalPlanItem{
			{
				ID:         "a",
				Activity:   RawActivity{Title: "Concert", DurationMin: 180},
				StartTime:  "19:00",
				Vibe:       "energetic",
				Notes:      "buy tickets early",
				Completed:  true,
				Rating:     &rating,
				Review:     "great set",
				CostActual: &cost,
			},
		},
	}

	saturday, _, err := ToPersisted(local)
	if err != nil {
		t.Fatalf("ToPersisted returned error: %v", err)
	}

	plan := &models.WeekendPlan{}
	if err := plan.SetDayItems(models.DaySaturday, saturday); err != nil {
		t.Fatalf("SetDayItems returned error: %v", err)
	}

	back := ToLocal(plan)
	item := back.Saturday[0]
	if item.Vibe != "energetic" || item.Notes != "buy tickets early" || !item.Completed {
		t.Fatalf("annotations lost in round trip: %+v", item)
	}
	if item.Rating == nil || *item.Rating != 5 {
		t.Fatalf("rating lost: %v", item.Rating)
	}
	if item.CostActual == nil || *item.CostActual != 450.0 {
		t.Fatalf("cost lost: %v", item.CostActual)
	}
	if item.EndTime != "22:00" {
		t.Fatalf("derived end time = %q, want 22:00", item.EndTime)
	}
}
