package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RunLifecycleScan runs both lifecycle passes over the caller's tasks
// and reports how many moved. The scheduler hits the same service path
// periodically; this endpoint lets a client force a scan after edits.
func (h *Handler) RunLifecycleScan(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	res, err := h.Tasks.RunScans(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "scan failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"demoted": res.Demoted, "promoted": res.Promoted})
}
