package handlers

import (
	"errors"
	"net/http"
	"time"

	"gtd_assistant/internal/domain"
	"gtd_assistant/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// taskRequest is the JSON shape for creating and editing tasks. Dates
// arrive already normalized to ISO calendar dates (YYYY-MM-DD); any
// natural-language parsing happens on the client.
type taskRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Status           string   `json:"status"`
	DueDate          string   `json:"due_date"`
	DeferDate        string   `json:"defer_date"`
	WaitingFor       []string `json:"waiting_for"`
	ProjectID        *string  `json:"project_id"`
	Contexts         []string `json:"contexts"`
	Energy           string   `json:"energy"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	Recurrence       string   `json:"recurrence"`
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRequest) apply(t *domain.Task) (string, bool) {
	if r.Title == "" {
		return "title is required", false
	}
	due, err := parseDate(r.DueDate)
	if err != nil {
		return "due_date must be YYYY-MM-DD", false
	}
	deferDate, err := parseDate(r.DeferDate)
	if err != nil {
		return "defer_date must be YYYY-MM-DD", false
	}
	for _, id := range r.WaitingFor {
		if id == t.ID {
			return "a task cannot wait for itself", false
		}
	}
	switch domain.Energy(r.Energy) {
	case "", domain.EnergyLow, domain.EnergyMedium, domain.EnergyHigh:
	default:
		return "energy must be low, medium or high", false
	}
	switch domain.Recurrence(r.Recurrence) {
	case domain.RecurrenceNone, domain.RecurrenceDaily, domain.RecurrenceWeekly, domain.RecurrenceMonthly:
	default:
		return "recurrence must be daily, weekly or monthly", false
	}

	t.Title = r.Title
	t.Description = r.Description
	t.DueDate = due
	t.DeferDate = deferDate
	t.WaitingFor = r.WaitingFor
	t.ProjectID = r.ProjectID
	t.Contexts = r.Contexts
	t.Energy = domain.Energy(r.Energy)
	t.EstimatedMinutes = r.EstimatedMinutes
	t.Recurrence = domain.Recurrence(r.Recurrence)
	return "", true
}

func (h *Handler) ListTasks(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	tasks, err := h.TaskRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tasks"})
		return
	}

	if status := c.Query("status"); status != "" {
		filtered := tasks[:0]
		for _, t := range tasks {
			if t.Status == domain.Status(status) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// CreateTask captures a new task. Everything starts in the inbox unless
// the request names another (non-completed) status.
func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req taskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	task := &domain.Task{ID: uuid.NewString(), UserID: userID, Status: domain.StatusInbox}
	if msg, ok := req.apply(task); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if req.Status != "" {
		status := domain.Status(req.Status)
		if !status.Valid() || status == domain.StatusCompleted {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		task.Status = status
	}

	if err := h.TaskRepo.Create(c.Request.Context(), task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *Handler) UpdateTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	ctx := c.Request.Context()
	task, err := h.TaskRepo.GetByID(ctx, userID, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load task"})
		return
	}

	var req taskRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if msg, ok := req.apply(task); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.TaskRepo.Update(ctx, task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// SetTaskStatus is the triage action: it moves a task between lists
// (inbox -> next/someday, manual parking in waiting, and so on).
func (h *Handler) SetTaskStatus(c *gin.Context) {
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
	status := domain.Status(req.Status)
	if !status.Valid() || status == domain.StatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status; use the complete endpoint to finish a task"})
		return
	}

	ctx := c.Request.Context()
	task, err := h.TaskRepo.GetByID(ctx, userID, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load task"})
		return
	}
	if task.IsDone() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task is completed"})
		return
	}

	task.Status = status
	if err := h.TaskRepo.UpdateStatus(ctx, userID, task.ID, task.Status, task.WaitingFor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (h *Handler) CompleteTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	task, next, err := h.Tasks.Complete(c.Request.Context(), userID, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete task"})
		return
	}

	resp := gin.H{"task": task}
	if next != nil {
		resp["next_occurrence"] = next
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	err := h.TaskRepo.Delete(c.Request.Context(), userID, c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
