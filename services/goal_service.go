package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/HarpaCodes/NutriMind/models"
)

// Fixed reference bodies per gender. The formulas deliberately ignore actual
// weight/height: targets are demo-grade estimates, not medical advice.
type referenceBody struct {
	weightKg float64
	heightCm float64
	sexConst float64 // Mifflin-St Jeor sex constant
}

var referenceBodies = map[string]referenceBody{
	models.GenderMale:   {weightKg: 70, heightCm: 175, sexConst: 5},
	models.GenderFemale: {weightKg: 60, heightCm: 162, sexConst: -161},
	models.GenderOther:  {weightKg: 65, heightCm: 168.5, sexConst: -78},
}

// activityMultipliers maps activity level to its TDEE multiplier. Single
// source of truth for valid levels, also used by request validation.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// maxAge bounds plausible ages. Past it the Mifflin-St Jeor age term would
// drive the calorie target to zero or below.
const maxAge = 130

// CalculateCalorieTarget derives the daily calorie goal: Mifflin-St Jeor BMR
// on the reference body, scaled by activity and an age band factor, rounded to
// the nearest 50 kcal.
func CalculateCalorieTarget(age int, gender, activityLevel string) (int, error) {
	if age <= 0 || age > maxAge {
		return 0, fmt.Errorf("%w: age must be between 1 and %d, got %d", ErrInvalidInput, maxAge, age)
	}
	body, ok := referenceBodies[normalize(gender)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, gender)
	}
	mult, ok := activityMultipliers[normalize(activityLevel)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", ErrInvalidInput, activityLevel)
	}

	bmr := 10*body.weightKg + 6.25*body.heightCm - 5*float64(age) + body.sexConst

	ageFactor := 1.0
	switch {
	case age < 25:
		ageFactor = 1.05
	case age > 60:
		ageFactor = 0.95
	}

	target := bmr * mult * ageFactor
	return int(math.Round(target/50) * 50), nil
}

// CalculateProteinTarget multiplies the reference body weight by an age-banded
// grams-per-kilogram coefficient.
func CalculateProteinTarget(age int, gender string) (int, error) {
	if age <= 0 || age > maxAge {
		return 0, fmt.Errorf("%w: age must be between 1 and %d, got %d", ErrInvalidInput, maxAge, age)
	}
	body, ok := referenceBodies[normalize(gender)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown gender %q", ErrInvalidInput, gender)
	}

	coeff := 1.0
	switch {
	case age < 18:
		coeff = 1.2
	case age < 30:
		coeff = 1.0
	case age < 50:
		coeff = 0.9
	}

	return int(math.Round(body.weightKg * coeff)), nil
}

// CalculateExerciseTarget is a step function of age: younger users get a
// higher daily minutes goal.
func CalculateExerciseTarget(age int) (int, error) {
	if age <= 0 || age > maxAge {
		return 0, fmt.Errorf("%w: age must be between 1 and %d, got %d", ErrInvalidInput, maxAge, age)
	}
	switch {
	case age < 18:
		return 60, nil
	case age < 30:
		return 45, nil
	case age < 45:
		return 40, nil
	case age < 60:
		return 35, nil
	default:
		return 30, nil
	}
}

// DeriveGoals builds the full GoalSet from a profile. Carb and fat targets
// encode a fixed 50% carb / 25% fat / 25% protein macro split.
func DeriveGoals(profile models.UserProfile) (models.GoalSet, error) {
	calories, err := CalculateCalorieTarget(profile.Age, profile.Gender, profile.ActivityLevel)
	if err != nil {
		return models.GoalSet{}, err
	}
	protein, err := CalculateProteinTarget(profile.Age, profile.Gender)
	if err != nil {
		return models.GoalSet{}, err
	}
	exercise, err := CalculateExerciseTarget(profile.Age)
	if err != nil {
		return models.GoalSet{}, err
	}

	return models.GoalSet{
		Calories:        calories,
		Protein:         protein,
		Carbs:           int(math.Round(float64(calories) * 0.5 / 4)),
		Fats:            int(math.Round(float64(calories) * 0.25 / 9)),
		ExerciseMinutes: exercise,
	}, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
