package models

// ResolutionSource tags where a NutritionRecord came from, so callers can tell
// an AI answer apart from a degraded estimate.
const (
	SourceAI        = "ai"
	SourceStatic    = "static"
	SourceEstimated = "estimated"
)

// NutritionRecord is the resolver's answer for a single food description.
type NutritionRecord struct {
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Insight  string  `json:"insight"`
	Source   string  `json:"source"`
}
