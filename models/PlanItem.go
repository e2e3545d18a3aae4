package models

// Days a placement can be scheduled on.
const (
	DaySaturday = "saturday"
	DaySunday   = "sunday"
)

// Activity sources understood by the normalizer. Everything downstream of the
// normalizer only ever sees ActivityData, never a provider-specific shape.
const (
	SourceInternal     = "internal"
	SourceTMDB         = "tmdb"
	SourceGooglePlaces = "google_places"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ActivityData is the canonical, denormalized activity snapshot embedded in a
// plan item. It is copied at save time so later catalog edits never rewrite
// historical plans.
type ActivityData struct {
	ActivityID  *uint    `json:"activityID,omitempty"` // internal catalog reference, nil for external or ad-hoc items
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	DurationMin int      `json:"durationMin"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Images      []string `json:"images,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Source      string   `json:"source"`
	ExternalID  string   `json:"externalID,omitempty"`

	// Place-like fields
	Location     string       `json:"location,omitempty"`
	Address      string       `json:"address,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	OpeningHours *bool        `json:"openingHours,omitempty"`
	Types        []string     `json:"types,omitempty"`
	PriceLevel   *int         `json:"priceLevel,omitempty"`

	// Media-like fields
	ReleaseDate  string `json:"releaseDate,omitempty"`
	PosterPath   string `json:"posterPath,omitempty"`
	BackdropPath string `json:"backdropPath,omitempty"`
}

// PlanItem is one activity scheduled into a day of a weekend plan. Items live
// inside the plan document's jsonb day arrays, not in their own table.
type PlanItem struct {
	ID       string       `json:"id,omitempty"` // client-side identity within the plan
	Activity ActivityData `json:"activity"`

	Day       string `json:"day"`
	Order     int    `json:"order"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	Vibe  string `json:"vibe,omitempty"`
	Notes string `json:"notes,omitempty"`

	// Completion tracking, populated only by plan completion
	Completed  bool     `json:"completed"`
	Rating     *int     `json:"rating,omitempty"`
	Review     string   `json:"review,omitempty"`
	Photos     []string `json:"photos,omitempty"`
	CostActual *float64 `json:"costActual,omitempty"`
}

// Scheduled reports whether the item carries a usable time range. Items
// missing either bound are exempt from conflict checking.
func (p PlanItem) Scheduled() bool {
	return p.StartTime != "" && p.EndTime != ""
}
