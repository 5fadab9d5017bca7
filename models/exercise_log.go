package models

import "time"

// ExerciseLogEntry is immutable once appended, same lifecycle as FoodLogEntry.
type ExerciseLogEntry struct {
	Name           string    `json:"name"`
	DurationMin    float64   `json:"duration_min"`
	CaloriesBurned float64   `json:"calories_burned"`
	Intensity      string    `json:"intensity"`
	LoggedAt       time.Time `json:"logged_at"`
}
