package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HarpaCodes/NutriMind/services"
)

// Handler carries the service dependencies for every endpoint.
type Handler struct {
	Store     *services.SessionStore
	Nutrition *services.NutritionService
}

func NewHandler(store *services.SessionStore, nutrition *services.NutritionService) *Handler {
	return &Handler{Store: store, Nutrition: nutrition}
}

func sessionToken(c *gin.Context) string {
	return c.MustGet("sessionToken").(string)
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidEntry):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// pct clamps consumed/goal to [0,1]; a zero goal reports zero progress.
func pct(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := consumed / goal
	if p > 1 {
		return 1
	}
	return p
}
