package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HarpaCodes/NutriMind/models"
)

type startSessionRequest struct {
	Name           string `json:"name" binding:"required"`
	Age            int    `json:"age" binding:"required,gt=0"`
	Gender         string `json:"gender" binding:"required"`
	ActivityLevel  string `json:"activity_level" binding:"required,activity_level"`
	DietPreference string `json:"diet_preference"`
}

// StartSession creates a session from a fresh profile and returns the bearer
// token along with the derived goals.
func (h *Handler) StartSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.Store.Create(models.UserProfile{
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

	c.JSON(http.StatusCreated, gin.H{
		"token":   sess.Token,
		"profile": sess.Profile,
		"goals":   sess.Goals,
	})
}

// EndSession is logout: the ledger resets and the token stops working.
func (h *Handler) EndSession(c *gin.Context) {
	if err := h.Store.Delete(sessionToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
