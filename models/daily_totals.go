package models

// DailyTotals are running sums over the session's logs. Invariant: each field
// equals the sum of the matching field across all entries since the last reset.
// Totals roll over only on explicit reset, never at midnight.
type DailyTotals struct {
	Calories       float64 `json:"calories"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
	Fats           float64 `json:"fats"`
	CaloriesBurned float64 `json:"calories_burned"`
	Water          float64 `json:"water"` // glasses
}
