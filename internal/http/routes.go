package http

import (
	"gtd_assistant/internal/config"
	"gtd_assistant/internal/http/handlers"
	"gtd_assistant/internal/http/middleware"
	"gtd_assistant/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, hub *ws.Hub, cfg *config.Config, version string) *handlers.Handler {
	h := handlers.NewHandler(db, hub, cfg.MaxSuggestions)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))

	// Auth (stricter limit)
	v1.POST("/auth", middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.APIRateWindow), h.Auth)

	// Tasks
	v1.GET("/tasks", middleware.JWT(), h.ListTasks)
	v1.POST("/tasks", middleware.JWT(), h.CreateTask)
	v1.PUT("/tasks/:id", middleware.JWT(), h.UpdateTask)
	v1.PATCH("/tasks/:id/status", middleware.JWT(), h.SetTaskStatus)
	v1.PATCH("/tasks/:id/complete", middleware.JWT(), h.CompleteTask)
	v1.DELETE("/tasks/:id", middleware.JWT(), h.DeleteTask)

	// Projects
	v1.GET("/projects", middleware.JWT(), h.ListProjects)
	v1.POST("/projects", middleware.JWT(), h.CreateProject)
	v1.PATCH("/projects/:id/status", middleware.JWT(), h.SetProjectStatus)

	// Recommendation engine
	v1.GET("/suggestions", middleware.JWT(), h.GetSuggestions)

	// Lifecycle scans on demand
	v1.POST("/lifecycle/scan", middleware.JWT(), h.RunLifecycleScan)

	// Task event feed (token in query, see handler)
	r.GET("/ws", h.WS())

	return h
}
