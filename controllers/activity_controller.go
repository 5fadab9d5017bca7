package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addWaterRequest struct {
	Glasses float64 `json:"glasses" binding:"required,gt=0"`
}

// AddWater bumps the water total by the given number of glasses.
func (h *Handler) AddWater(c *gin.Context) {
	var req addWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totals, err := h.Store.AddWater(sessionToken(c), req.Glasses)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totals": totals})
}

// ResetDay clears all logs and zeroes the totals; profile and goals survive.
func (h *Handler) ResetDay(c *gin.Context) {
	if err := h.Store.Reset(sessionToken(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
