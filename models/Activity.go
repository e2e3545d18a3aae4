package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity is an internal catalog entry users can place into weekend plans.
// Externally sourced items (movies, places) never land in this table; they are
// denormalized into plan items by the normalizer.
type Activity struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Category    string `json:"category" gorm:"not null;index"`
	Subcategory string `json:"subcategory"`
	Description string `json:"description" gorm:"type:text"`

	// Location & logistics
	Location string  `json:"location"`
	Address  string  `json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`

	// Timing
	DurationMin int            `json:"durationMin" gorm:"not null;default:60"`
	BestTime    datatypes.JSON `json:"bestTime" gorm:"type:jsonb"` // morning, afternoon, evening, night

	// Cost
	CostEstimateMin float64 `json:"costEstimateMin"`
	CostEstimateMax float64 `json:"costEstimateMax"`
	Currency        string  `json:"currency" gorm:"type:varchar(8);default:'INR'"`
	BudgetCategory  string  `json:"budgetCategory" gorm:"type:varchar(12)"` // low, medium, premium

	// Presentation
	Icon   string         `json:"icon" gorm:"type:varchar(16);default:'🎯'"`
	Color  string         `json:"color" gorm:"type:varchar(12);default:'#FDE68A'"`
	Images datatypes.JSON `json:"images" gorm:"type:jsonb"`

	// Ratings
	Rating      float64 `json:"rating" gorm:"default:0"`
	ReviewCount int     `json:"reviewCount" gorm:"default:0"`

	// Classification
	VibeTags       datatypes.JSON `json:"vibeTags" gorm:"type:jsonb"`       // adventurous, relaxing, energetic, ...
	CompanionTypes datatypes.JSON `json:"companionTypes" gorm:"type:jsonb"` // solo, family, friends, couple

	// Booking
	RequiresBooking bool   `json:"requiresBooking" gorm:"default:false"`
	BookingURL      string `json:"bookingURL"`

	WeatherDependent bool `json:"weatherDependent" gorm:"default:false"`

	Status    string `json:"status" gorm:"type:varchar(12);default:'active';index"` // active, inactive, pending
	CreatedBy *uint  `json:"createdBy" gorm:"index"`
	Verified  bool   `json:"verified" gorm:"default:false"`
}
