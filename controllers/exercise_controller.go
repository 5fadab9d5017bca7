package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HarpaCodes/NutriMind/models"
)

type logExerciseRequest struct {
	Name           string  `json:"name" binding:"required"`
	DurationMin    float64 `json:"duration_min" binding:"required,gt=0"`
	CaloriesBurned float64 `json:"calories_burned" binding:"min=0"`
	Intensity      string  `json:"intensity"`
}

// LogExercise appends an exercise entry and returns the updated totals.
func (h *Handler) LogExercise(c *gin.Context) {
	var req logExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.ExerciseLogEntry{
		Name:           req.Name,
		DurationMin:    req.DurationMin,
		CaloriesBurned: req.CaloriesBurned,
		Intensity:      req.Intensity,
		LoggedAt:       time.Now(),
	}

	totals, err := h.Store.LogExercise(sessionToken(c), entry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry, "totals": totals})
}

// ListExerciseLog returns logged exercises, newest first.
func (h *Handler) ListExerciseLog(c *gin.Context) {
	sess, err := h.Store.Snapshot(sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	entries := sess.ExerciseLog
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	c.JSON(http.StatusOK, entries)
}
