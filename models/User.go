package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string `json:"name"`
	Email       string `json:"email" gorm:"uniqueIndex;not null"`
	Password    string `json:"-"`
	PhoneNumber string `json:"phoneNumber"`
	Location    string `json:"location"`
	Bio         string `json:"bio" gorm:"type:text"`

	// Planning preferences gathered at signup
	PreferredActivities datatypes.JSON `json:"preferredActivities"`
	BudgetRange         string         `json:"budgetRange" gorm:"type:varchar(12);default:'medium'"` // low, medium, premium
	Companions          datatypes.JSON `json:"companions"`
	PreferredVibe       datatypes.JSON `json:"preferredVibe"`
	DietaryPreferences  datatypes.JSON `json:"dietaryPreferences"`

	AllowsNotifications *bool `json:"allowsNotifications"`

	Plans []WeekendPlan `json:"plans,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// Custom JSON marshaling to expose the jsonb preference columns as arrays
func (u *User) MarshalJSON() ([]byte, error) {
	type Alias User
	aux := &struct {
		PreferredActivities []string      `json:"preferredActivities"`
		Companions          []string      `json:"companions"`
		PreferredVibe       []string      `json:"preferredVibe"`
		DietaryPreferences  []string      `json:"dietaryPreferences"`
		Plans               []WeekendPlan `json:"plans,omitempty"`
		*Alias
	}{
		PreferredActivities: []string{},
		Companions:          []string{},
		PreferredVibe:       []string{},
		DietaryPreferences:  []string{},
		Plans:               u.Plans,
		Alias:               (*Alias)(u),
	}

	if u.PreferredActivities != nil {
		var preferred []string
		if err := json.Unmarshal(u.PreferredActivities, &preferred); err == nil {
			aux.PreferredActivities = preferred
		}
	}
	if u.Companions != nil {
		var companions []string
		if err := json.Unmarshal(u.Companions, &companions); err == nil {
			aux.Companions = companions
		}
	}
	if u.PreferredVibe != nil {
		var vibes []string
		if err := json.Unmarshal(u.PreferredVibe, &vibes); err == nil {
			aux.PreferredVibe = vibes
		}
	}
	if u.DietaryPreferences != nil {
		var dietary []string
		if err := json.Unmarshal(u.DietaryPreferences, &dietary); err == nil {
			aux.DietaryPreferences = dietary
		}
	}

	return json.Marshal(aux)
}
