package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Dashboard is the single read the main screen needs: profile, goals, totals
// and progress in one payload.
func (h *Handler) Dashboard(c *gin.Context) {
	sess, err := h.Store.Snapshot(sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	remaining := float64(sess.Goals.Calories) - sess.Totals.Calories + sess.Totals.CaloriesBurned
	if remaining < 0 {
		remaining = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":            sess.Profile,
		"goals":              sess.Goals,
		"totals":             sess.Totals,
		"progress":           progressFor(sess),
		"remaining_calories": remaining,
	})
}
