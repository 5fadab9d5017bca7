package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HarpaCodes/NutriMind/models"
)

func (h *Handler) GetProfile(c *gin.Context) {
	sess, err := h.Store.Snapshot(sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess.Profile)
}

type updateProfileRequest struct {
	Name           string `json:"name" binding:"required"`
	Age            int    `json:"age" binding:"required,gt=0"`
	Gender         string `json:"gender" binding:"required"`
	ActivityLevel  string `json:"activity_level" binding:"required,activity_level"`
	DietPreference string `json:"diet_preference"`
}

// UpdateProfile edits the profile. Derived goals follow the new profile unless
// the user has overridden them by hand.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.Store.UpdateProfile(sessionToken(c), models.UserProfile{
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		ActivityLevel:  req.ActivityLevel,
		DietPreference: req.DietPreference,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": sess.Profile, "goals": sess.Goals})
}
