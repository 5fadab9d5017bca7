package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarpaCodes/NutriMind/models"
)

func TestCalorieTargetIsRoundedAndPositive(t *testing.T) {
	for _, gender := range []string{models.GenderMale, models.GenderFemale, models.GenderOther} {
		for _, level := range models.ActivityLevels {
			for _, age := range []int{16, 24, 25, 40, 60, 61, 80} {
				got, err := CalculateCalorieTarget(age, gender, level)
				require.NoError(t, err)
				assert.Greater(t, got, 0, "age=%d gender=%s level=%s", age, gender, level)
				assert.Equal(t, 0, got%50, "age=%d gender=%s level=%s", age, gender, level)
			}
		}
	}
}

func TestCalorieTargetMonotonicInActivity(t *testing.T) {
	for _, gender := range []string{models.GenderMale, models.GenderFemale} {
		prev := 0
		for _, level := range models.ActivityLevels {
			got, err := CalculateCalorieTarget(35, gender, level)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, prev, "level %s should not lower the target", level)
			prev = got
		}
	}
}

func TestCalorieTargetKnownValue(t *testing.T) {
	// male reference body, age 30, moderate:
	// BMR = 10*70 + 6.25*175 - 5*30 + 5 = 1648.75; *1.55 = 2555.56 -> 2550
	got, err := CalculateCalorieTarget(30, models.GenderMale, "moderate")
	require.NoError(t, err)
	assert.Equal(t, 2550, got)
}

func TestCalorieTargetRejectsBadEnums(t *testing.T) {
	_, err := CalculateCalorieTarget(30, "unknown", "moderate")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculateCalorieTarget(30, models.GenderMale, "couch")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CalculateCalorieTarget(0, models.GenderMale, "moderate")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestImplausibleAgesRejected(t *testing.T) {
	// past the age cap the Mifflin-St Jeor age term would push the target to
	// zero or below; such ages must error instead
	for _, age := range []int{131, 360, 400} {
		_, err := CalculateCalorieTarget(age, models.GenderMale, "sedentary")
		assert.ErrorIs(t, err, ErrInvalidInput, "age %d", age)

		_, err = CalculateProteinTarget(age, models.GenderMale)
		assert.ErrorIs(t, err, ErrInvalidInput, "age %d", age)

		_, err = CalculateExerciseTarget(age)
		assert.ErrorIs(t, err, ErrInvalidInput, "age %d", age)

		_, err = DeriveGoals(models.UserProfile{Name: "X", Age: age, Gender: models.GenderMale, ActivityLevel: "sedentary"})
		assert.ErrorIs(t, err, ErrInvalidInput, "age %d", age)
	}

	// the cap itself is still a valid, strictly positive target
	for _, gender := range []string{models.GenderMale, models.GenderFemale, models.GenderOther} {
		got, err := CalculateCalorieTarget(130, gender, "sedentary")
		require.NoError(t, err)
		assert.Greater(t, got, 0)
	}
}

func TestProteinTargetAgeBands(t *testing.T) {
	cases := []struct {
		age  int
		want int // male reference weight 70kg
	}{
		{17, 84}, // 1.2 under 18
		{18, 70}, // 1.0 under 30
		{29, 70},
		{30, 63}, // 0.9 under 50
		{49, 63},
		{50, 70}, // back to 1.0
	}
	for _, tc := range cases {
		got, err := CalculateProteinTarget(tc.age, models.GenderMale)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "age %d", tc.age)
	}

	// female reference weight 60kg
	got, err := CalculateProteinTarget(17, models.GenderFemale)
	require.NoError(t, err)
	assert.Equal(t, 72, got)

	got, err = CalculateProteinTarget(40, models.GenderFemale)
	require.NoError(t, err)
	assert.Equal(t, 54, got)
}

func TestExerciseTargetAgeBands(t *testing.T) {
	cases := []struct{ age, want int }{
		{17, 60}, {18, 45}, {29, 45}, {30, 40}, {44, 40}, {45, 35}, {59, 35}, {60, 30}, {75, 30},
	}
	for _, tc := range cases {
		got, err := CalculateExerciseTarget(tc.age)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "age %d", tc.age)
	}
}

func TestDeriveGoalsMacroSplit(t *testing.T) {
	goals, err := DeriveGoals(models.UserProfile{
		Name:          "Asha",
		Age:           30,
		Gender:        models.GenderMale,
		ActivityLevel: "moderate",
	})
	require.NoError(t, err)

	assert.Equal(t, 2550, goals.Calories)
	// 50% of calories at 4 kcal/g, 25% at 9 kcal/g
	assert.Equal(t, 319, goals.Carbs) // 2550*0.125 = 318.75
	assert.Equal(t, 71, goals.Fats)   // 2550*0.25/9 = 70.83
	assert.Equal(t, 40, goals.ExerciseMinutes)
	assert.False(t, goals.Overridden)
}
