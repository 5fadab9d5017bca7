package models

import "time"

// Where a logged food came from: camera scan, nutrition label, or typed in.
const (
	ScanSourceImage  = "image"
	ScanSourceLabel  = "label"
	ScanSourceManual = "manual"
)

// FoodLogEntry is immutable once appended. There is no edit or delete.
type FoodLogEntry struct {
	Name       string    `json:"name"`
	Calories   float64   `json:"calories"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fats       float64   `json:"fats"`
	ScanSource string    `json:"scan_source"`
	LoggedAt   time.Time `json:"logged_at"`
}
