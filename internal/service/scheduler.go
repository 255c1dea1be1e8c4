package service

import (
	"context"
	"time"

	"gtd_assistant/internal/logger"
	"gtd_assistant/internal/repository"
)

// Scheduler drives the lifecycle scans: once at startup and then on a
// fixed interval, for every known user.
type Scheduler struct {
	users    *repository.UserRepository
	tasks    *TaskService
	interval time.Duration
}

func NewScheduler(users *repository.UserRepository, tasks *TaskService, interval time.Duration) *Scheduler {
	return &Scheduler{users: users, tasks: tasks, interval: interval}
}

// Start runs the scan loop until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		s.scanAll(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.scanAll(ctx)
			}
		}
	}()
}

func (s *Scheduler) scanAll(ctx context.Context) {
	ids, err := s.users.ListIDs(ctx)
	if err != nil {
		logger.Error("scheduler: list users failed", "error", err)
		return
	}

	for _, userID := range ids {
		res, err := s.tasks.RunScans(ctx, userID)
		if err != nil {
			logger.Error("scheduler: scan failed", "user_id", userID, "error", err)
			continue
		}
		if res.Demoted > 0 || res.Promoted > 0 {
			logger.Info("lifecycle scan moved tasks",
				"user_id", userID, "demoted", res.Demoted, "promoted", res.Promoted)
		}
	}
}
