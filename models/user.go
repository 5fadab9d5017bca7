package models

import "strings"

// Gender values accepted at profile setup.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Activity levels ordered from least to most active. The order matters: the
// calorie multiplier must be non-decreasing along this list.
var ActivityLevels = []string{"sedentary", "light", "moderate", "active", "very_active"}

// Diet preferences used by meal recommendations.
const (
	DietAll           = "all"
	DietVegetarian    = "vegetarian"
	DietVegan         = "vegan"
	DietNonVegetarian = "non_vegetarian"
)

// UserProfile is created at session start and only changes through an explicit
// profile edit. It is owned by exactly one session.
type UserProfile struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	ActivityLevel  string `json:"activity_level"`
	DietPreference string `json:"diet_preference"`
}

func ValidGender(g string) bool {
	switch strings.ToLower(strings.TrimSpace(g)) {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

func ValidActivityLevel(level string) bool {
	level = strings.ToLower(strings.TrimSpace(level))
	for _, l := range ActivityLevels {
		if l == level {
			return true
		}
	}
	return false
}

func ValidDietPreference(d string) bool {
	switch strings.ToLower(strings.TrimSpace(d)) {
	case DietAll, DietVegetarian, DietVegan, DietNonVegetarian, "":
		return true
	}
	return false
}
