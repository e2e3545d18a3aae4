package services

import (
	"strconv"
	"strings"

	"github.com/roshaneleshaddai/Weekendlyfe/models"
)

// Defaults substituted for fields a source omitted. Every activity must end
// up with a positive duration; a missing one is not an error.
const (
	DefaultDurationMin = 60
	DefaultIcon        = "🎯"
	DefaultColor       = "#FDE68A"
)

// tempIDPrefix marks client-generated ids for items that were never saved to
// the catalog. Such ids must not be persisted as catalog references.
const tempIDPrefix = "temp_"

// RawActivity accepts an activity payload from any source: internal catalog
// documents, TMDB movies, Google places, or ad-hoc user-typed items. It is
// the only type in the system that knows source-specific field names.
type RawActivity struct {
	ID          string `json:"id"`
	ActivityID  *uint  `json:"activityID"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`

	DurationMin int `json:"durationMin"`
	Duration    int `json:"duration"` // some sources use "duration" instead

	Icon   string   `json:"icon"`
	Color  string   `json:"color"`
	Images []string `json:"images"`
	Photos []string `json:"photos"` // place results use "photos"

	Rating     *float64 `json:"rating"`
	Source     string   `json:"source"`
	ExternalID string   `json:"external_id"`

	Location     string              `json:"location"`
	Address      string              `json:"address"`
	Coordinates  *models.Coordinates `json:"coordinates"`
	OpeningHours *bool               `json:"opening_hours"`
	Types        []string            `json:"types"`
	PriceLevel   *int                `json:"price_level"`

	ReleaseDate  string `json:"release_date"`
	PosterPath   string `json:"poster_path"`
	BackdropPath string `json:"backdrop_path"`
}

// IsTempID reports whether an id is a client-generated placeholder rather
// than a real catalog reference.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, tempIDPrefix)
}

// catalogRef resolves the internal catalog reference, if any. Temp ids and
// external items yield nil so no dangling reference is ever persisted.
func catalogRef(raw RawActivity) *uint {
	if raw.ActivityID != nil && *raw.ActivityID != 0 {
		return raw.ActivityID
	}
	if raw.ID == "" || IsTempID(raw.ID) {
		return nil
	}
	if raw.Source != "" && raw.Source != models.SourceInternal {
		return nil
	}
	parsed, err := strconv.ParseUint(raw.ID, 10, 32)
	if err != nil || parsed == 0 {
		return nil
	}
	ref := uint(parsed)
	return &ref
}

// NormalizeActivity maps any source shape into the canonical snapshot the
// rest of the system operates on. It is total: missing fields get explicit
// defaults, never an error.
func NormalizeActivity(raw RawActivity) models.ActivityData {
	duration := raw.DurationMin
	if duration <= 0 {
		duration = raw.Duration
	}
	if duration <= 0 {
		duration = DefaultDurationMin
	}

	title := raw.Title
	if title == "" {
		title = "Unknown Activity"
	}

	icon := raw.Icon
	if icon == "" {
		icon = DefaultIcon
	}

	color := raw.Color
	if color == "" {
		color = DefaultColor
	}

	source := raw.Source
	if source == "" {
		source = models.SourceInternal
	}

	images := raw.Images
	if len(images) == 0 {
		images = raw.Photos
	}

	externalID := raw.ExternalID
	if externalID == "" && source != models.SourceInternal && !IsTempID(raw.ID) {
		externalID = raw.ID
	}

	return models.ActivityData{
		ActivityID:   catalogRef(raw),
		Title:        title,
		Description:  raw.Description,
		Category:     raw.Category,
		Subcategory:  raw.Subcategory,
		DurationMin:  duration,
		Icon:         icon,
		Color:        color,
		Images:       images,
		Rating:       raw.Rating,
		Source:       source,
		ExternalID:   externalID,
		Location:     raw.Location,
		Address:      raw.Address,
		Coordinates:  raw.Coordinates,
		OpeningHours: raw.OpeningHours,
		Types:        raw.Types,
		PriceLevel:   raw.PriceLevel,
		ReleaseDate:  raw.ReleaseDate,
		PosterPath:   raw.PosterPath,
		BackdropPath: raw.BackdropPath,
	}
}
