package handlers

import (
	"errors"
	"net/http"

	"gtd_assistant/internal/domain"
	"gtd_assistant/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) ListProjects(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	projects, err := h.ProjectRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) CreateProject(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req struct {
		Title  string `json:"title"`
		Status string `json:"status"`
	}
	if err := c.BindJSON(&req); err != nil || req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	status := domain.ProjectActive
	if req.Status != "" {
		status = domain.ProjectStatus(req.Status)
		if status != domain.ProjectActive && status != domain.ProjectSomeday && status != domain.ProjectArchived {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
	}

	project := &domain.Project{ID: uuid.NewString(), UserID: userID, Title: req.Title, Status: status}
	if err := h.ProjectRepo.Create(c.Request.Context(), project); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

func (h *Handler) SetProjectStatus(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	status := domain.ProjectStatus(req.Status)
	if status != domain.ProjectActive && status != domain.ProjectSomeday && status != domain.ProjectArchived {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	err := h.ProjectRepo.UpdateStatus(c.Request.Context(), userID, c.Param("id"), status)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
