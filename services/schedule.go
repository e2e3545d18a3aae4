package services

import (
	"fmt"
	"sort"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
	"github.com/roshaneleshaddai/Weekendlyfe/utils"
)

// Conflict describes one pair of overlapping placements in a shape the UI can
// render directly.
type Conflict struct {
	Day       string `json:"day"`
	Activity1 string `json:"activity1"`
	Activity2 string `json:"activity2"`
	Time1     string `json:"time1"`
	Time2     string `json:"time2"`
}

func timeRange(item models.PlanItem) string {
	return fmt.Sprintf("%s - %s", item.StartTime, item.EndTime)
}

// startMinutes is used for ordering only; items that failed to parse sort
// first and are excluded from overlap checks separately.
func startMinutes(item models.PlanItem) int {
	minutes, err := utils.TimeToMinutes(item.StartTime)
	if err != nil {
		return 0
	}
	return minutes
}

// overlaps tests two half-open intervals [s1,e1) and [s2,e2). Back-to-back
// placements where one ends exactly when the other starts do not overlap.
func overlaps(s1, e1, s2, e2 int) bool {
	return s1 < e2 && s2 < e1
}

func itemBounds(item models.PlanItem) (start, end int, ok bool) {
	if !item.Scheduled() {
		return 0, 0, false
	}
	start, startErr := utils.TimeToMinutes(item.StartTime)
	end, endErr := utils.TimeToMinutes(item.EndTime)
	if startErr != nil || endErr != nil {
		return 0, 0, false
	}
	return start, end, true
}

// FindConflicts reports every pairwise overlap within one day's placements.
// Detection is a query: it never mutates its input and never fails for
// well-formed items. Unscheduled items are exempt.
func FindConflicts(day string, items []models.PlanItem) []Conflict {
	sorted := make([]models.PlanItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := startMinutes(sorted[i]), startMinutes(sorted[j])
		if si != sj {
			return si < sj
		}
		return sorted[i].Order < sorted[j].Order
	})

	conflicts := []Conflict{}
	for i := 0; i < len(sorted); i++ {
		s1, e1, ok := itemBounds(sorted[i])
		if !ok {
			continue
		}
		for j := i + 1; j < len(sorted); j++ {
			s2, e2, ok := itemBounds(sorted[j])
			if !ok {
				continue
			}
			if overlaps(s1, e1, s2, e2) {
				conflicts = append(conflicts, Conflict{
					Day:       day,
					Activity1: sorted[i].Activity.Title,
					Activity2: sorted[j].Activity.Title,
					Time1:     timeRange(sorted[i]),
					Time2:     timeRange(sorted[j]),
				})
			}
		}
	}
	return conflicts
}

// ConflictsWith is the incremental form used when placing a single candidate
// against a day's existing items. Day lists are small, so a linear scan is
// fine. The candidate's own entry (same non-empty ID) is skipped.
func ConflictsWith(day string, existing []models.PlanItem, candidate models.PlanItem) []Conflict {
	conflicts := []Conflict{}

	cs, ce, ok := itemBounds(candidate)
	if !ok {
		return conflicts
	}

	for _, item := range existing {
		if candidate.ID != "" && item.ID == candidate.ID {
			continue
		}
		s, e, ok := itemBounds(item)
		if !ok {
			continue
		}
		if overlaps(s, e, cs, ce) {
			conflicts = append(conflicts, Conflict{
				Day:       day,
				Activity1: item.Activity.Title,
				Activity2: candidate.Activity.Title,
				Time1:     timeRange(item),
				Time2:     timeRange(candidate),
			})
		}
	}
	return conflicts
}

// ValidatePlan runs conflict detection over both days of an assembled plan.
// A non-empty result means the whole save must be rejected; there is no
// partial apply.
func ValidatePlan(saturday, sunday []models.PlanItem) []Conflict {
	conflicts := FindConflicts(models.DaySaturday, saturday)
	return append(conflicts, FindConflicts(models.DaySunday, sunday)...)
}
