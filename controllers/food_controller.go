package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/HarpaCodes/NutriMind/models"
)

type analyzeFoodRequest struct {
	Description string `json:"description"`
	ImageBase64 string `json:"image_base64"`
}

// AnalyzeFood resolves a description (and/or image) to a nutrition record.
// Resolution never fails: AI errors degrade to the static table or a bounded
// estimate, so this endpoint cannot 5xx on collaborator trouble.
func (h *Handler) AnalyzeFood(c *gin.Context) {
	var req analyzeFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record := h.Nutrition.Resolve(req.Description, req.ImageBase64)
	c.JSON(http.StatusOK, record)
}

type logFoodRequest struct {
	// Either a full record...
	Name     string   `json:"name"`
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
	// ...or a description to resolve first.
	Description string `json:"description"`
	ImageBase64 string `json:"image_base64"`
	ScanSource  string `json:"scan_source"`
}

// LogFood appends a food entry and returns the updated totals. When nutrient
// values are absent the description goes through the resolver first.
func (h *Handler) LogFood(c *gin.Context) {
	var req logFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := models.FoodLogEntry{
		Name:       req.Name,
		ScanSource: req.ScanSource,
	}

	if req.Calories != nil {
		entry.Calories = *req.Calories
		if req.Protein != nil {
			entry.Protein = *req.Protein
		}
		if req.Carbs != nil {
			entry.Carbs = *req.Carbs
		}
		if req.Fats != nil {
			entry.Fats = *req.Fats
		}
	} else {
		desc := req.Description
		if desc == "" {
			desc = req.Name
		}
		record := h.Nutrition.Resolve(desc, req.ImageBase64)
		entry.Name = record.FoodName
		entry.Calories = record.Calories
		entry.Protein = record.Protein
		entry.Carbs = record.Carbs
		entry.Fats = record.Fats
	}

	if entry.ScanSource == "" {
		entry.ScanSource = models.ScanSourceManual
	}
	entry.LoggedAt = time.Now()

	totals, err := h.Store.LogFood(sessionToken(c), entry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry": entry, "totals": totals})
}

// ListFoodLog returns logged foods, newest first.
func (h *Handler) ListFoodLog(c *gin.Context) {
	sess, err := h.Store.Snapshot(sessionToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	entries := sess.FoodLog
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	c.JSON(http.StatusOK, entries)
}
