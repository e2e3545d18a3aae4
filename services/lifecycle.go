package services

import (
	"log"
	"time"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
)

// ReconcileOnRead applies the implicit wall-clock transition: a plan whose
// weekend has fully elapsed and whose status is not terminal becomes
// completed. A weekend spans its Saturday and the following Sunday, so the
// transition fires only once that Sunday is strictly before today. It is
// idempotent and must run on every read path so all entry points agree.
// Returns true when the plan changed and needs saving.
func ReconcileOnRead(plan *models.WeekendPlan, now time.Time) bool {
	if models.IsTerminalStatus(plan.Status) {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekend := plan.WeekendDate
	saturday := time.Date(weekend.Year(), weekend.Month(), weekend.Day(), 0, 0, 0, 0, now.Location())
	sunday := saturday.AddDate(0, 0, 1)

	if !sunday.Before(today) {
		return false
	}

	completedAt := now
	plan.Status = models.PlanStatusCompleted
	plan.CompletedAt = &completedAt
	return true
}

// ValidStatus reports whether a status value belongs to the enum.
func ValidStatus(status string) bool {
	switch status {
	case models.PlanStatusDraft, models.PlanStatusPlanning, models.PlanStatusInProgress,
		models.PlanStatusCompleted, models.PlanStatusCancelled:
		return true
	}
	return false
}

// ApplyStatus sets a plan's status. Any explicit transition is allowed, but
// reopening a terminal plan is worth flagging in the logs since it usually
// means a client bug.
func ApplyStatus(plan *models.WeekendPlan, status string, now time.Time) {
	if models.IsTerminalStatus(plan.Status) && !models.IsTerminalStatus(status) {
		log.Printf("plan %d: suspicious status transition %s -> %s", plan.ID, plan.Status, status)
	}

	plan.Status = status
	if status == models.PlanStatusCompleted && plan.CompletedAt == nil {
		completedAt := now
		plan.CompletedAt = &completedAt
	}
}

// ItemReview carries one placement's completion feedback, matched by activity
// identity within its day.
type ItemReview struct {
	ActivityID *uint    `json:"activityID"`
	ExternalID string   `json:"externalID"`
	Title      string   `json:"title"`
	Day        string   `json:"day" validate:"required,oneof=saturday sunday"`
	Rating     *int     `json:"rating" validate:"omitempty,min=1,max=5"`
	ReviewText string   `json:"reviewText"`
	Photos     []string `json:"photos"`
	CostActual *float64 `json:"costActual"`
}

func matchesItem(item models.PlanItem, review ItemReview) bool {
	if review.ActivityID != nil && item.Activity.ActivityID != nil {
		return *review.ActivityID == *item.Activity.ActivityID
	}
	if review.ExternalID != "" && item.Activity.ExternalID != "" {
		return review.ExternalID == item.Activity.ExternalID
	}
	return review.Title != "" && review.Title == item.Activity.Title
}

// CompletePlan applies per-item reviews, plan-level rating/review, the
// actual-cost aggregate (absent costs count as 0), and the terminal status
// stamp. This is the only mutation that touches placement completion fields.
func CompletePlan(plan *models.WeekendPlan, overallRating *int, overallReview string, reviews []ItemReview, now time.Time) error {
	for _, day := range []string{models.DaySaturday, models.DaySunday} {
		items := plan.DayItems(day)
		changed := false
		for _, review := range reviews {
			if review.Day != day {
				continue
			}
			for i := range items {
				if !matchesItem(items[i], review) {
					continue
				}
				items[i].Completed = true
				items[i].Rating = review.Rating
				items[i].Review = review.ReviewText
				if review.Photos != nil {
					items[i].Photos = review.Photos
				}
				items[i].CostActual = review.CostActual
				changed = true
				break
			}
		}
		if changed {
			if err := plan.SetDayItems(day, items); err != nil {
				return err
			}
		}
	}

	total := 0.0
	for _, item := range plan.AllItems() {
		if item.CostActual != nil {
			total += *item.CostActual
		}
	}
	plan.TotalActualCost = total

	plan.OverallRating = overallRating
	plan.OverallReview = overallReview
	plan.Status = models.PlanStatusCompleted
	completedAt := now
	plan.CompletedAt = &completedAt
	return nil
}
