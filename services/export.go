package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
)

const (
	posterWidth  = 800
	posterHeight = 1000
)

func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}

// GeneratePoster renders a plan's placements as an SVG poster, grouped by day
// and ordered by stored Order. It is a pure formatting pass over an already
// validated plan.
func GeneratePoster(plan *models.WeekendPlan) string {
	var content strings.Builder
	content.WriteString(`<text x="40" y="60" font-size="28" font-family="sans-serif" fill="#111">Weekendlyfe — Your Weekend Plan</text>`)

	y := 100
	for _, day := range []string{models.DaySaturday, models.DaySunday} {
		items := plan.DayItems(day)
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Order < items[j].Order
		})

		fmt.Fprintf(&content,
			`<text x="40" y="%d" font-size="18" font-family="sans-serif" fill="#333" font-weight="600">%s</text>`,
			y, strings.ToUpper(day))
		y += 20

		for _, item := range items {
			title := escapeXML(item.Activity.Title)
			meta := escapeXML(fmt.Sprintf("%s • %dm", item.Activity.Category, item.Activity.DurationMin))
			fmt.Fprintf(&content,
				`<g><rect x="40" y="%d" width="700" height="48" rx="8" fill="#f8fafc" stroke="#e6e6e6"/><text x="58" y="%d" font-size="14" font-family="sans-serif" fill="#111">%s — %s</text></g>`,
				y, y+28, title, meta)
			y += 60
		}
		y += 10
	}

	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d"><rect width="100%%" height="100%%" fill="#f1f5f9"/><g>%s</g></svg>`,
		posterWidth, posterHeight, posterWidth, posterHeight, content.String())
}
