package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarpaCodes/NutriMind/models"
)

func TestSuggestExercisesDurations(t *testing.T) {
	got := SuggestExercises(500)
	require.Len(t, got, 6)

	byName := map[string]ExerciseSuggestion{}
	for _, s := range got {
		byName[s.Name] = s
	}

	assert.Equal(t, 50, byName["Jogging"].DurationMin)    // 500/10
	assert.Equal(t, 100, byName["Walking"].DurationMin)   // 500/5
	assert.Equal(t, 41, byName["Cycling"].DurationMin)    // floor(500/12)
	assert.Equal(t, 125, byName["Yoga"].DurationMin)      // 500/4
	assert.Equal(t, 62, byName["Swimming"].DurationMin)   // floor(500/8)
	assert.Equal(t, 41, byName["Jump Rope"].DurationMin)  // floor(500/12)
}

func TestSuggestExercisesMinimumDurations(t *testing.T) {
	for _, s := range SuggestExercises(0) {
		assert.Greater(t, s.DurationMin, 0, s.Name)
	}
	// negative calories behave like zero
	assert.Equal(t, SuggestExercises(0), SuggestExercises(-10))
}

func TestSuggestMealsDietFiltering(t *testing.T) {
	for _, m := range SuggestMeals(models.DietVegan, 0) {
		assert.Equal(t, models.DietVegan, m.Diet, m.Name)
	}
	for _, m := range SuggestMeals(models.DietVegetarian, 0) {
		assert.NotEqual(t, models.DietNonVegetarian, m.Diet, m.Name)
	}
	assert.NotEmpty(t, SuggestMeals(models.DietAll, 0))
}

func TestSuggestMealsCalorieBudget(t *testing.T) {
	for _, m := range SuggestMeals(models.DietAll, 300) {
		assert.LessOrEqual(t, m.Calories, 300.0, m.Name)
	}

	// tiny budget still returns something to show
	got := SuggestMeals(models.DietAll, 50)
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 3)
}

func TestSuggestMealsExhaustedBudget(t *testing.T) {
	// zero or negative budgets behave like a blown budget: at most the three
	// lightest compatible meals, not the whole list
	for _, budget := range []float64{0, -100} {
		got := SuggestMeals(models.DietAll, budget)
		assert.NotEmpty(t, got, "budget %v", budget)
		assert.LessOrEqual(t, len(got), 3, "budget %v", budget)
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, got[i-1].Calories, got[i].Calories)
		}
	}

	// diet filtering still applies on the exhausted-budget path
	for _, m := range SuggestMeals(models.DietVegan, 0) {
		assert.Equal(t, models.DietVegan, m.Diet, m.Name)
	}
}
