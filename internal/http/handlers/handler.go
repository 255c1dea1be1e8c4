package handlers

import (
	"gtd_assistant/internal/repository"
	"gtd_assistant/internal/service"
	"gtd_assistant/internal/ws"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB          *pgxpool.Pool
	TaskRepo    *repository.TaskRepository
	ProjectRepo *repository.ProjectRepository
	UserRepo    *repository.UserRepository
	Tasks       *service.TaskService
	Hub         *ws.Hub

	// MaxSuggestions is the suggestion list cap used when a request
	// does not set its own.
	MaxSuggestions int
}

func NewHandler(db *pgxpool.Pool, hub *ws.Hub, maxSuggestions int) *Handler {
	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	return &Handler{
		DB:             db,
		TaskRepo:       taskRepo,
		ProjectRepo:    projectRepo,
		UserRepo:       repository.NewUserRepository(db),
		Tasks:          service.NewTaskService(taskRepo, projectRepo, hub),
		Hub:            hub,
		MaxSuggestions: maxSuggestions,
	}
}

// getUserID extracts the authenticated user id set by the JWT middleware.
func getUserID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
