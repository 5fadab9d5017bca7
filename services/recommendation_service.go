package services

import (
	"math"
	"sort"
	"strings"

	"github.com/HarpaCodes/NutriMind/models"
)

// ExerciseSuggestion is one way to burn a given number of calories.
type ExerciseSuggestion struct {
	Name           string  `json:"name"`
	DurationMin    int     `json:"duration_min"`
	CaloriesPerMin float64 `json:"calories_per_min"`
}

type exerciseOption struct {
	name        string
	perMin      float64
	minDuration int
}

var exerciseOptions = []exerciseOption{
	{"Jogging", 10, 5},
	{"Walking", 5, 10},
	{"Cycling", 12, 8},
	{"Yoga", 4, 15},
	{"Swimming", 8, 10},
	{"Jump Rope", 12, 8},
}

// SuggestExercises maps a calorie amount to a duration per exercise, floored
// at a per-exercise minimum so tiny inputs still produce a sane workout.
func SuggestExercises(calories float64) []ExerciseSuggestion {
	if calories < 0 {
		calories = 0
	}
	out := make([]ExerciseSuggestion, 0, len(exerciseOptions))
	for _, opt := range exerciseOptions {
		duration := int(math.Floor(calories / opt.perMin))
		if duration < opt.minDuration {
			duration = opt.minDuration
		}
		out = append(out, ExerciseSuggestion{
			Name:           opt.name,
			DurationMin:    duration,
			CaloriesPerMin: opt.perMin,
		})
	}
	return out
}

// MealSuggestion is a meal idea sized against the user's remaining calories.
type MealSuggestion struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Diet     string  `json:"diet"`
}

// Diet classification: vegan meals satisfy every preference, vegetarian meals
// satisfy vegetarian and all, non-vegetarian meals only non_vegetarian and all.
var mealSuggestions = []MealSuggestion{
	{"Dal with Rice", 350, 12, models.DietVegan},
	{"Vegetable Biryani", 400, 10, models.DietVegan},
	{"Idli with Sambar", 180, 8, models.DietVegan},
	{"Chapati with Mixed Vegetables", 250, 7, models.DietVegan},
	{"Paneer Tikka", 300, 18, models.DietVegetarian},
	{"Curd Rice", 280, 9, models.DietVegetarian},
	{"Masala Dosa", 250, 6, models.DietVegetarian},
	{"Grilled Chicken Salad", 320, 28, models.DietNonVegetarian},
	{"Egg Curry with Chapati", 340, 16, models.DietNonVegetarian},
	{"Chicken Curry with Rice", 550, 29, models.DietNonVegetarian},
	{"Fish Curry with Rice", 450, 25, models.DietNonVegetarian},
}

// SuggestMeals filters the suggestion list by diet preference and remaining
// calories. A non-positive budget still returns the three lightest options so
// the page is never empty.
func SuggestMeals(dietPreference string, remainingCalories float64) []MealSuggestion {
	pref := strings.ToLower(strings.TrimSpace(dietPreference))
	if pref == "" {
		pref = models.DietAll
	}

	var out []MealSuggestion
	if remainingCalories > 0 {
		for _, m := range mealSuggestions {
			if dietAllows(pref, m.Diet) && m.Calories <= remainingCalories {
				out = append(out, m)
			}
		}
	}

	if len(out) == 0 {
		// budget exhausted or blown: offer the lightest compatible meals anyway
		for _, m := range mealSuggestions {
			if dietAllows(pref, m.Diet) {
				out = append(out, m)
			}
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Calories < out[j].Calories })
		if len(out) > 3 {
			out = out[:3]
		}
	}
	return out
}

func dietAllows(pref, mealDiet string) bool {
	switch pref {
	case models.DietVegan:
		return mealDiet == models.DietVegan
	case models.DietVegetarian:
		return mealDiet == models.DietVegan || mealDiet == models.DietVegetarian
	case models.DietNonVegetarian:
		return mealDiet == models.DietNonVegetarian || mealDiet == models.DietVegan ||
			mealDiet == models.DietVegetarian
	default:
		return true
	}
}
