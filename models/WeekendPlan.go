package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Plan statuses. draft and planning are interchangeable "being edited"
// states; completed and cancelled are terminal.
const (
	PlanStatusDraft      = "draft"
	PlanStatusPlanning   = "planning"
	PlanStatusInProgress = "in_progress"
	PlanStatusCompleted  = "completed"
	PlanStatusCancelled  = "cancelled"
)

// NonTerminalStatuses is the set of statuses an active plan can hold. The
// partial unique index on (user_id, weekend_date) is scoped to these, so a
// user keeps completed history while holding at most one live plan per
// weekend.
var NonTerminalStatuses = []string{PlanStatusDraft, PlanStatusPlanning, PlanStatusInProgress}

func IsTerminalStatus(status string) bool {
	return status == PlanStatusCompleted || status == PlanStatusCancelled
}

type WeekendPlan struct {
	gorm.Model
	UserID uint `json:"userID" gorm:"not null;index"`
	User   User `json:"-" gorm:"foreignKey:UserID"`

	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`

	// The Saturday of the weekend; natural key for "which weekend".
	WeekendDate time.Time `json:"weekendDate" gorm:"type:date;not null;index"`

	Status string `json:"status" gorm:"type:varchar(20);default:'draft';index"`

	SaturdayItems datatypes.JSON `json:"saturdayItems" gorm:"type:jsonb"`
	SundayItems   datatypes.JSON `json:"sundayItems" gorm:"type:jsonb"`

	Tags datatypes.JSON `json:"tags" gorm:"type:jsonb"`

	// Aggregates populated at completion
	TotalActualCost float64    `json:"totalActualCost"`
	OverallRating   *int       `json:"overallRating,omitempty" gorm:"check:overall_rating >= 1 AND overall_rating <= 5"`
	OverallReview   string     `json:"overallReview" gorm:"type:text"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
}

// DayItems decodes one day's jsonb placement array. A null column decodes to
// an empty slice.
func (p *WeekendPlan) DayItems(day string) []PlanItem {
	var raw datatypes.JSON
	if day == DaySaturday {
		raw = p.SaturdayItems
	} else {
		raw = p.SundayItems
	}

	var items []PlanItem
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &items); err != nil {
			return []PlanItem{}
		}
	}
	if items == nil {
		items = []PlanItem{}
	}
	return items
}

// SetDayItems encodes a day's placement array back into its jsonb column.
func (p *WeekendPlan) SetDayItems(day string, items []PlanItem) error {
	if items == nil {
		items = []PlanItem{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if day == DaySaturday {
		p.SaturdayItems = encoded
	} else {
		p.SundayItems = encoded
	}
	return nil
}

// AllItems returns both days' placements, Saturday first.
func (p *WeekendPlan) AllItems() []PlanItem {
	return append(p.DayItems(DaySaturday), p.DayItems(DaySunday)...)
}

// TagList decodes the jsonb tags column.
func (p *WeekendPlan) TagList() []string {
	var tags []string
	if len(p.Tags) > 0 {
		json.Unmarshal(p.Tags, &tags)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags
}

// CompletionPercentage reports how much of the plan was marked completed.
func (p *WeekendPlan) CompletionPercentage() int {
	items := p.AllItems()
	if len(items) == 0 {
		return 0
	}
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return int(float64(completed)/float64(len(items))*100 + 0.5)
}

// TotalDuration sums the planned duration of every placement, in minutes.
func (p *WeekendPlan) TotalDuration() int {
	total := 0
	for _, item := range p.AllItems() {
		total += item.Activity.DurationMin
	}
	return total
}
