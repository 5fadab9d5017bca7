package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HarpaCodes/NutriMind/services"
)

// ExerciseRecommendations suggests workouts to burn the given calories.
// Without an explicit amount it uses today's consumed calories.
func (h *Handler) ExerciseRecommendations(c *gin.Context) {
	sess, err := h.Store.Snapshot(sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	calories := sess.Totals.Calories
	if q := c.Query("calories"); q != "" {
		v, err := strconv.ParseFloat(q, 64)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "'calories' must be a non-negative number"})
			return
		}
		calories = v
	}

	c.JSON(http.StatusOK, gin.H{
		"calories":    calories,
		"suggestions": services.SuggestExercises(calories),
	})
}

// MealRecommendations filters meal ideas by the profile's diet preference and
// the calories left in today's budget.
func (h *Handler) MealRecommendations(c *gin.Context) {
	sess, err := h.Store.Snapshot(sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	remaining := float64(sess.Goals.Calories) - sess.Totals.Calories + sess.Totals.CaloriesBurned
	c.JSON(http.StatusOK, gin.H{
		"diet_preference":    sess.Profile.DietPreference,
		"remaining_calories": remaining,
		"suggestions":        services.SuggestMeals(sess.Profile.DietPreference, remaining),
	})
}
