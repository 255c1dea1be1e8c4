package handlers

import (
	"net/http"
	"strconv"

	"gtd_assistant/internal/domain"
	"gtd_assistant/internal/gtd"

	"github.com/gin-gonic/gin"
)

// GetSuggestions returns the ranked "what should I do now" list. Query
// parameters map onto the scoring preferences; all are optional.
func (h *Handler) GetSuggestions(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	prefs := gtd.Preferences{
		Context:        c.Query("context"),
		MaxSuggestions: h.MaxSuggestions,
	}

	if v := c.Query("energy"); v != "" {
		energy := domain.Energy(v)
		if energy != domain.EnergyLow && energy != domain.EnergyMedium && energy != domain.EnergyHigh {
			c.JSON(http.StatusBadRequest, gin.H{"error": "energy must be low, medium or high"})
			return
		}
		prefs.Energy = energy
	}
	if v := c.Query("available_minutes"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available_minutes must be a positive number"})
			return
		}
		prefs.AvailableMinutes = n
	}
	if v := c.Query("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "max must be a positive number"})
			return
		}
		prefs.MaxSuggestions = n
	}
	if v := c.Query("status"); v != "" {
		status := domain.Status(v)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		prefs.Status = status
	}

	suggestions, err := h.Tasks.GetSuggestions(c.Request.Context(), userID, prefs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute suggestions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
