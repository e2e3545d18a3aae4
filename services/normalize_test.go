package services

import (
	"testing"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
)

func TestNormalizeActivityDefaults(t *testing.T) {
	got := NormalizeActivity(RawActivity{})

	if got.Title != "Unknown Activity" {
		t.Fatalf("title = %q, want Unknown Activity", got.Title)
	}
	if got.DurationMin != DefaultDurationMin {
		t.Fatalf("duration = %d, want %d", got.DurationMin, DefaultDurationMin)
	}
	if got.Icon != DefaultIcon {
		t.Fatalf("icon = %q, want %q", got.Icon, DefaultIcon)
	}
	if got.Color != DefaultColor {
		t.Fatalf("color = %q, want %q", got.Color, DefaultColor)
	}
	if got.Source != models.SourceInternal {
		t.Fatalf("source = %q, want internal", got.Source)
	}
	if got.ActivityID != nil {
		t.Fatalf("expected nil catalog reference, got %d", *got.ActivityID)
	}
}

func TestNormalizeActivityKeepsProvidedFields(t *testing.T) {
	rating := 4.5
	raw := RawActivity{
		ID:          "42",
		Title:       "Pottery Class",
		Category:    "creative",
		DurationMin: 90,
		Icon:        "🏺",
		Color:       "#ABCDEF",
		Rating:      &rating,
	}

	got := NormalizeActivity(raw)
	if got.Title != "Pottery Class" || got.DurationMin != 90 || got.Icon != "🏺" || got.Color != "#ABCDEF" {
		t.Fatalf("provided fields were not preserved: %+v", got)
	}
	if got.ActivityID == nil || *got.ActivityID != 42 {
		t.Fatalf("expected catalog reference 42, got %v", got.ActivityID)
	}
	if got.Rating == nil || *got.Rating != 4.5 {
		t.Fatalf("rating not preserved: %v", got.Rating)
	}
}

func TestNormalizeActivityAlternateFieldNames(t *testing.T) {
	raw := RawActivity{
		Title:    "Street Food Walk",
		Duration: 45,
		Photos:   []string{"https://example.com/p.jpg"},
	}

	got := NormalizeActivity(raw)
	if got.DurationMin != 45 {
		t.Fatalf("duration = %d, want 45 from alternate field", got.DurationMin)
	}
	if len(got.Images) != 1 || got.Images[0] != "https://example.com/p.jpg" {
		t.Fatalf("photos were not folded into images: %v", got.Images)
	}
}

func TestNormalizeActivityTempIDNeverPersistsReference(t *testing.T) {
	raw := RawActivity{
		ID:    "temp_1712345678",
		Title: "Board Games",
	}

	got := NormalizeActivity(raw)
	if got.ActivityID != nil {
		t.Fatalf("temp id produced catalog reference %d", *got.ActivityID)
	}
	if got.ExternalID != "" {
		t.Fatalf("temp id leaked into externalID: %q", got.ExternalID)
	}
}

func TestNormalizeActivityExternalSources(t *testing.T) {
	movie := NormalizeActivity(RawActivity{
		ID:     "603",
		Title:  "The Matrix",
		Source: models.SourceTMDB,
	})
	if movie.ActivityID != nil {
		t.Fatal("external item must not hold a catalog reference")
	}
	if movie.ExternalID != "603" {
		t.Fatalf("externalID = %q, want inferred 603", movie.ExternalID)
	}

	place := NormalizeActivity(RawActivity{
		ID:         "ChIJxyz",
		ExternalID: "ChIJxyz",
		Title:      "City Park",
		Source:     models.SourceGooglePlaces,
	})
	if place.ExternalID != "ChIJxyz" {
		t.Fatalf("externalID = %q, want ChIJxyz", place.ExternalID)
	}
}

func TestIsTempID(t *testing.T) {
	if !IsTempID("temp_123") {
		t.Fatal("temp_123 should be a temp id")
	}
	if IsTempID("123") || IsTempID("") {
		t.Fatal("plain ids are not temp ids")
	}
}
