package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarpaCodes/NutriMind/models"
)

func testProfile() models.UserProfile {
	return models.UserProfile{
		Name:          "Ravi",
		Age:           28,
		Gender:        models.GenderMale,
		ActivityLevel: "light",
	}
}

func TestCreateSessionDerivesGoals(t *testing.T) {
	store := NewSessionStore()
	sess, err := store.Create(testProfile())
	require.NoError(t, err)

	assert.NotEmpty(t, sess.Token)
	assert.Greater(t, sess.Goals.Calories, 0)
	assert.Equal(t, 0, sess.Goals.Calories%50)
	assert.Equal(t, models.DietAll, sess.Profile.DietPreference)
	assert.Zero(t, sess.Totals)
}

func TestCreateSessionRejectsBadEnums(t *testing.T) {
	store := NewSessionStore()

	p := testProfile()
	p.Gender = "robot"
	_, err := store.Create(p)
	assert.ErrorIs(t, err, ErrInvalidInput)

	p = testProfile()
	p.ActivityLevel = "hyperactive"
	_, err = store.Create(p)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogFoodAccumulatesTotals(t *testing.T) {
	store := NewSessionStore()
	sess, err := store.Create(testProfile())
	require.NoError(t, err)

	totals, err := store.LogFood(sess.Token, models.FoodLogEntry{Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fats: 0.3})
	require.NoError(t, err)
	assert.Equal(t, 105.0, totals.Calories)
	assert.Equal(t, 1.3, totals.Protein)

	totals, err = store.LogFood(sess.Token, models.FoodLogEntry{Name: "Dal", Calories: 150, Protein: 8, Carbs: 25, Fats: 3})
	require.NoError(t, err)
	assert.Equal(t, 255.0, totals.Calories)
	assert.InDelta(t, 9.3, totals.Protein, 1e-9)
	assert.Equal(t, 52.0, totals.Carbs)
	assert.InDelta(t, 3.3, totals.Fats, 1e-9)

	snap, err := store.Snapshot(sess.Token)
	require.NoError(t, err)
	assert.Len(t, snap.FoodLog, 2)
}

func TestLogFoodOrderDoesNotChangeTotals(t *testing.T) {
	entries := []models.FoodLogEntry{
		{Name: "A", Calories: 95, Protein: 0.5, Carbs: 25, Fats: 0.3},
		{Name: "B", Calories: 200, Protein: 4, Carbs: 45, Fats: 1},
		{Name: "C", Calories: 78, Protein: 6, Carbs: 0.6, Fats: 5},
	}

	store := NewSessionStore()
	forward, err := store.Create(testProfile())
	require.NoError(t, err)
	backward, err := store.Create(testProfile())
	require.NoError(t, err)

	for i := range entries {
		_, err := store.LogFood(forward.Token, entries[i])
		require.NoError(t, err)
		_, err = store.LogFood(backward.Token, entries[len(entries)-1-i])
		require.NoError(t, err)
	}

	a, err := store.Snapshot(forward.Token)
	require.NoError(t, err)
	b, err := store.Snapshot(backward.Token)
	require.NoError(t, err)
	assert.Equal(t, a.Totals, b.Totals)
}

func TestLogFoodRejectsNegativeValues(t *testing.T) {
	store := NewSessionStore()
	sess, err := store.Create(testProfile())
	require.NoError(t, err)

	_, err = store.LogFood(sess.Token, models.FoodLogEntry{Name: "Antimatter", Calories: -5})
	assert.ErrorIs(t, err, ErrInvalidEntry)

	snap, err := store.Snapshot(sess.Token)
	require.NoError(t, err)
	assert.Zero(t, snap.Totals)
	assert.Empty(t, snap.FoodLog)
}

func TestLogExerciseSeparateTotal(t *testing.T) {
	store := NewSessionStore()
	sess, err := store.Create(testProfile())
	require.NoError(t, err)

	_, err = store.LogFood(sess.Token, models.FoodLogEntry{Name: "Rice", Calories: 200, Protein: 4, Carbs: 45, Fats: 1})
	require.NoError(t, err)

	totals, err := store.LogExercise(sess.Token, models.ExerciseLogEntry{Name: "Jogging", DurationMin: 30, CaloriesBurned: 300})
	require.NoError(t, err)
	assert.Equal(t, 200.0, totals.Calories)
	assert.Equal(t, 300.0, totals.CaloriesBurned)

	_, err = store.LogExercise(sess.Token, models.ExerciseLogEntry{Name: "Rest", DurationMin: 0})
	assert.ErrorIs(t, err, ErrInvalidEntry)

	_, err = store.LogExercise(sess.Token, models.ExerciseLogEntry{Name: "Odd", DurationMin: 10, CaloriesBurned: -1})
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestAddWater(t *testing.T) {
	store := NewSessionStore()
	sess, err := store.Create(testProfile())
	require.NoError(t, err)

	totals, err := store.AddWater(sess.Token, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, totals.Water)

	totals, err = store.AddWater(sess.Token, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, totals.Water)

	_, err = store.AddWater(sess.Token, 0)
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestResetZeroesEverything(t *testing.T) {
	store := NewSessionStore()
	sess, err := store.Create(testProfile())
	require.NoError(t, err)

	_, err = store.LogFood(sess.Token, models.FoodLogEntry{Name: "Biryani", Calories: 400, Protein: 20, Carbs: 60, Fats: 12})
	require.NoError(t, err)
	_, err = store.LogExercise(sess.Token, models.ExerciseLogEntry{Name: "Walking", DurationMin: 20, CaloriesBurned: 100})
	require.NoError(t, err)
	_, err = store.AddWater(sess.Token, 4)
	require.NoError(t, err)

	require.NoError(t, store.Reset(sess.Token))

	snap, err := store.Snapshot(sess.Token)
	require.NoError(t, err)
	assert.Zero(t, snap.Totals)
	assert.Empty(t, snap.FoodLog)
	assert.Empty(t, snap.ExerciseLog)
	// profile and goals survive a reset
	assert.Equal(t, "Ravi", snap.Profile.Name)
	assert.Greater(t, snap.Goals.Calories, 0)
}

func TestOverrideGoalsSurvivesProfileEdit(t *testing.T) {
	store := NewSessionStore()
	sess, err := store.Create(testProfile())
	require.NoError(t, err)

	_, err = store.OverrideGoals(sess.Token, models.GoalSet{Calories: 1800, Protein: 100, Carbs: 200, Fats: 50, ExerciseMinutes: 45})
	require.NoError(t, err)

	p := testProfile()
	p.Age = 55
	updated, err := store.UpdateProfile(sess.Token, p)
	require.NoError(t, err)

	assert.True(t, updated.Goals.Overridden)
	assert.Equal(t, 1800, updated.Goals.Calories)
	assert.Equal(t, 55, updated.Profile.Age)
}

func TestProfileEditRederivesGoalsWhenNotOverridden(t *testing.T) {
	store := NewSessionStore()
	sess, err := store.Create(testProfile())
	require.NoError(t, err)

	p := testProfile()
	p.ActivityLevel = "very_active"
	updated, err := store.UpdateProfile(sess.Token, p)
	require.NoError(t, err)

	assert.Greater(t, updated.Goals.Calories, sess.Goals.Calories)
	assert.False(t, updated.Goals.Overridden)
}

func TestDeleteSession(t *testing.T) {
	store := NewSessionStore()
	sess, err := store.Create(testProfile())
	require.NoError(t, err)

	require.NoError(t, store.Delete(sess.Token))

	_, err = store.Snapshot(sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete(sess.Token), ErrSessionNotFound)
	assert.ErrorIs(t, store.Reset(sess.Token), ErrSessionNotFound)
}
