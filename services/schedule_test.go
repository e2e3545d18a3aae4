package services

import (
	"testing"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
)

func scheduledItem(id, title, start, end string, order int) models.PlanItem {
	return models.PlanItem{
		ID:        id,
		Activity:  models.ActivityData{Title: title},
		Order:     order,
		StartTime: start,
		EndTime:   end,
	}
}

func TestFindConflictsDetectsOverlap(t *testing.T) {
	items := []models.PlanItem{
		scheduledItem("a", "Brunch", "10:00", "11:30", 0),
		scheduledItem("b", "Museum", "11:00", "13:00", 1),
	}

	conflicts := FindConflicts(models.DaySaturday, items)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}

	c := conflicts[0]
	if c.Day != models.DaySaturday {
		t.Fatalf("conflict day = %q, want saturday", c.Day)
	}
	if c.Activity1 != "Brunch" || c.Activity2 != "Museum" {
		t.Fatalf("conflict pair = %q / %q", c.Activity1, c.Activity2)
	}
	if c.Time1 != "10:00 - 11:30" || c.Time2 != "11:00 - 13:00" {
		t.Fatalf("conflict times = %q / %q", c.Time1, c.Time2)
	}
}

func TestFindConflictsBackToBackIsClean(t *testing.T) {
	items := []models.PlanItem{
		scheduledItem("a", "Brunch", "10:00", "11:00", 0),
		scheduledItem("b", "Museum", "11:00", "12:00", 1),
	}

	if conflicts := FindConflicts(models.DaySaturday, items); len(conflicts) != 0 {
		t.Fatalf("expected no conflicts for back-to-back items, got %v", conflicts)
	}
}

func TestFindConflictsIgnoresUnscheduled(t *testing.T) {
	items := []models.PlanItem{
		scheduledItem("a", "Brunch", "10:00", "11:00", 0),
		{ID: "b", Activity: models.ActivityData{Title: "Someday"}, Order: 1},
		{ID: "c", Activity: models.ActivityData{Title: "Broken"}, Order: 2, StartTime: "bad", EndTime: "worse"},
	}

	if conflicts := FindConflicts(models.DaySaturday, items); len(conflicts) != 0 {
		t.Fatalf("expected unscheduled items to be exempt, got %v", conflicts)
	}
}

func TestFindConflictsReportsEveryPair(t *testing.T) {
	// Three mutually overlapping items produce three pairs.
	items := []models.PlanItem{
		scheduledItem("a", "One", "10:00", "12:00", 0),
		scheduledItem("b", "Two", "10:30", "12:30", 1),
		scheduledItem("c", "Three", "11:00", "13:00", 2),
	}

	if conflicts := FindConflicts(models.DaySunday, items); len(conflicts) != 3 {
		t.Fatalf("expected 3 conflicts, got %d", len(conflicts))
	}
}

func TestFindConflictsDoesNotMutateInput(t *testing.T) {
	items := []models.PlanItem{
		scheduledItem("b", "Later", "14:00", "15:00", 1),
		scheduledItem("a", "Earlier", "09:00", "10:00", 0),
	}

	FindConflicts(models.DaySaturday, items)

	if items[0].ID != "b" || items[1].ID != "a" {
		t.Fatal("FindConflicts reordered its input slice")
	}
}

func TestConflictsWithSkipsOwnEntry(t *testing.T) {
	existing := []models.PlanItem{
		scheduledItem("a", "Brunch", "10:00", "11:30", 0),
		scheduledItem("b", "Museum", "12:00", "13:00", 1),
	}

	// Moving item "a" within its own slot conflicts with nothing.
	moved := scheduledItem("a", "Brunch", "10:30", "11:00", 0)
	if conflicts := ConflictsWith(models.DaySaturday, existing, moved); len(conflicts) != 0 {
		t.Fatalf("expected candidate's own entry to be skipped, got %v", conflicts)
	}

	// A new item over the museum slot conflicts once.
	candidate := scheduledItem("c", "Lunch", "12:30", "13:30", 2)
	conflicts := ConflictsWith(models.DaySaturday, existing, candidate)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	if conflicts[0].Activity1 != "Museum" || conflicts[0].Activity2 != "Lunch" {
		t.Fatalf("conflict pair = %q / %q", conflicts[0].Activity1, conflicts[0].Activity2)
	}
}

func TestValidatePlanChecksBothDays(t *testing.T) {
	saturday := []models.PlanItem{
		scheduledItem("a", "Hike", "08:00", "12:00", 0),
		scheduledItem("b", "Brunch", "11:00", "12:30", 1),
	}
	sunday := []models.PlanItem{
		scheduledItem("c", "Movie", "18:00", "20:00", 0),
		scheduledItem("d", "Dinner", "19:30", "21:00", 1),
	}

	conflicts := ValidatePlan(saturday, sunday)
	if len(conflicts) != 2 {
		t.Fatalf("expected 2 conflicts, got %d", len(conflicts))
	}
	if conflicts[0].Day != models.DaySaturday || conflicts[1].Day != models.DaySunday {
		t.Fatalf("conflict days = %q, %q", conflicts[0].Day, conflicts[1].Day)
	}

	// Cross-day placements at the same time never conflict.
	crossSaturday := []models.PlanItem{scheduledItem("a", "Hike", "09:00", "11:00", 0)}
	crossSunday := []models.PlanItem{scheduledItem("b", "Swim", "09:00", "11:00", 0)}
	if conflicts := ValidatePlan(crossSaturday, crossSunday); len(conflicts) != 0 {
		t.Fatalf("expected no cross-day conflicts, got %v", conflicts)
	}
}
