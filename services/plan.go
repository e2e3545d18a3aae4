package services

import (
	"sort"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
	"github.com/roshaneleshaddai/Weekendlyfe/utils"
)

// DefaultStartTime is substituted when a placement arrives without one.
const DefaultStartTime = "09:00"

// LocalPlanItem is one placement as the client edits it: a raw activity in
// whatever source shape the client picked, plus scheduling and annotation
// fields.
type LocalPlanItem struct {
	ID        string      `json:"id"`
	Activity  RawActivity `json:"activity"`
	Order     int         `json:"order"`
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	Vibe      string      `json:"vibe"`
	Notes     string      `json:"notes"`

	Completed  bool     `json:"completed"`
	Rating     *int     `json:"rating"`
	Review     string   `json:"review"`
	Photos     []string `json:"photos"`
	CostActual *float64 `json:"costActual"`
}

// LocalPlan is the client-facing plan shape: two day-keyed placement lists.
type LocalPlan struct {
	Saturday []LocalPlanItem `json:"saturday"`
	Sunday   []LocalPlanItem `json:"sunday"`
}

// persistDayItems converts one day's local placements into the persisted
// shape: activities normalized, Order forced to the positional index so it
// always matches the list's actual sequence, and EndTime derived from the
// activity duration when the client didn't supply one.
func persistDayItems(items []LocalPlanItem, day string) ([]models.PlanItem, error) {
	out := make([]models.PlanItem, 0, len(items))
	for index, item := range items {
		activity := NormalizeActivity(item.Activity)

		startTime := item.StartTime
		if startTime == "" {
			startTime = DefaultStartTime
		}

		endTime := item.EndTime
		if endTime == "" {
			derived, err := utils.CalculateEndTime(startTime, activity.DurationMin)
			if err != nil {
				return nil, err
			}
			endTime = derived
		} else if _, err := utils.TimeToMinutes(endTime); err != nil {
			return nil, err
		}

		out = append(out, models.PlanItem{
			ID:         item.ID,
			Activity:   activity,
			Day:        day,
			Order:      index,
			StartTime:  startTime,
			EndTime:    endTime,
			Vibe:       item.Vibe,
			Notes:      item.Notes,
			Completed:  item.Completed,
			Rating:     item.Rating,
			Review:     item.Review,
			Photos:     item.Photos,
			CostActual: item.CostActual,
		})
	}
	return out, nil
}

// ToPersisted converts a local plan into the two persisted day arrays. The
// only possible failure is a malformed clock time, which callers surface as a
// validation error.
func ToPersisted(local LocalPlan) (saturday, sunday []models.PlanItem, err error) {
	saturday, err = persistDayItems(local.Saturday, models.DaySaturday)
	if err != nil {
		return nil, nil, err
	}
	sunday, err = persistDayItems(local.Sunday, models.DaySunday)
	if err != nil {
		return nil, nil, err
	}
	return saturday, sunday, nil
}

func localDayItems(items []models.PlanItem) []LocalPlanItem {
	sorted := make([]models.PlanItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	out := make([]LocalPlanItem, 0, len(sorted))
	for _, item := range sorted {
		activity := item.Activity
		out = append(out, LocalPlanItem{
			ID: item.ID,
			Activity: RawActivity{
				ActivityID:   activity.ActivityID,
				Title:        activity.Title,
				Description:  activity.Description,
				Category:     activity.Category,
				Subcategory:  activity.Subcategory,
				DurationMin:  activity.DurationMin,
				Icon:         activity.Icon,
				Color:        activity.Color,
				Images:       activity.Images,
				Rating:       activity.Rating,
				Source:       activity.Source,
				ExternalID:   activity.ExternalID,
				Location:     activity.Location,
				Address:      activity.Address,
				Coordinates:  activity.Coordinates,
				OpeningHours: activity.OpeningHours,
				Types:        activity.Types,
				PriceLevel:   activity.PriceLevel,
				ReleaseDate:  activity.ReleaseDate,
				PosterPath:   activity.PosterPath,
				BackdropPath: activity.BackdropPath,
			},
			Order:      item.Order,
			StartTime:  item.StartTime,
			EndTime:    item.EndTime,
			Vibe:       item.Vibe,
			Notes:      item.Notes,
			Completed:  item.Completed,
			Rating:     item.Rating,
			Review:     item.Review,
			Photos:     item.Photos,
			CostActual: item.CostActual,
		})
	}
	return out
}

// ToLocal is the inverse of ToPersisted: placements come back sorted by
// stored Order so render order is deterministic regardless of storage order.
func ToLocal(plan *models.WeekendPlan) LocalPlan {
	return LocalPlan{
		Saturday: localDayItems(plan.DayItems(models.DaySaturday)),
		Sunday:   localDayItems(plan.DayItems(models.DaySunday)),
	}
}
