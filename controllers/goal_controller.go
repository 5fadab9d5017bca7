package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HarpaCodes/NutriMind/models"
)

// GetGoals returns the targets plus per-metric progress for the dashboard
// rings.
func (h *Handler) GetGoals(c *gin.Context) {
	sess, err := h.Store.Snapshot(sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"goals":    sess.Goals,
		"progress": progressFor(sess),
	})
}

type updateGoalsRequest struct {
	Calories        int `json:"calories" binding:"min=0"`
	Protein         int `json:"protein" binding:"min=0"`
	Carbs           int `json:"carbs" binding:"min=0"`
	Fats            int `json:"fats" binding:"min=0"`
	ExerciseMinutes int `json:"exercise_minutes" binding:"min=0"`
}

// UpdateGoals is the manual override path. Last write wins; the override flag
// stops profile edits from recomputing targets.
func (h *Handler) UpdateGoals(c *gin.Context) {
	var req updateGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.Store.OverrideGoals(sessionToken(c), models.GoalSet{
		Calories:        req.Calories,
		Protein:         req.Protein,
		Carbs:           req.Carbs,
		Fats:            req.Fats,
		ExerciseMinutes: req.ExerciseMinutes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Goals)
}

func progressFor(sess models.Session) map[string]interface{} {
	exerciseMinutes := 0.0
	for _, e := range sess.ExerciseLog {
		exerciseMinutes += e.DurationMin
	}
	return map[string]interface{}{
		"calories": map[string]float64{
			"consumed": sess.Totals.Calories,
			"goal":     float64(sess.Goals.Calories),
			"percent":  pct(sess.Totals.Calories, float64(sess.Goals.Calories)),
		},
		"protein": map[string]float64{
			"consumed": sess.Totals.Protein,
			"goal":     float64(sess.Goals.Protein),
			"percent":  pct(sess.Totals.Protein, float64(sess.Goals.Protein)),
		},
		"carbs": map[string]float64{
			"consumed": sess.Totals.Carbs,
			"goal":     float64(sess.Goals.Carbs),
			"percent":  pct(sess.Totals.Carbs, float64(sess.Goals.Carbs)),
		},
		"fats": map[string]float64{
			"consumed": sess.Totals.Fats,
			"goal":     float64(sess.Goals.Fats),
			"percent":  pct(sess.Totals.Fats, float64(sess.Goals.Fats)),
		},
		"exercise": map[string]float64{
			"consumed": exerciseMinutes,
			"goal":     float64(sess.Goals.ExerciseMinutes),
			"percent":  pct(exerciseMinutes, float64(sess.Goals.ExerciseMinutes)),
		},
	}
}
