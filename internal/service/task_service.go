package service

import (
	"context"
	"time"

	"gtd_assistant/internal/domain"
	"gtd_assistant/internal/gtd"
	"gtd_assistant/internal/logger"
	"gtd_assistant/internal/repository"

	"github.com/google/uuid"
)

// EventPublisher receives lifecycle move notifications; the ws hub
// implements it. A nil publisher disables events.
type EventPublisher interface {
	PublishTaskMoved(userID int64, task *domain.Task, from domain.Status)
}

// ScanResult reports how many tasks each lifecycle pass moved.
type ScanResult struct {
	Demoted  int `json:"demoted"`
	Promoted int `json:"promoted"`
}

type TaskService struct {
	tasks    *repository.TaskRepository
	projects *repository.ProjectRepository
	events   EventPublisher
	now      func() time.Time
}

func NewTaskService(tasks *repository.TaskRepository, projects *repository.ProjectRepository, events EventPublisher) *TaskService {
	return &TaskService{
		tasks:    tasks,
		projects: projects,
		events:   events,
		now:      time.Now,
	}
}

// WithClock overrides the service clock. Tests use it to pin "now".
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	s.now = now
	return s
}

// RunScans loads the user's collection, runs both lifecycle passes and
// persists every task whose status changed. The engine mutates the
// in-memory collection; persistence failures are logged per task and do
// not undo in-memory moves already counted.
func (s *TaskService) RunScans(ctx context.Context, userID int64) (ScanResult, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return ScanResult{}, err
	}

	before := make(map[string]domain.Status, len(tasks))
	for _, t := range tasks {
		before[t.ID] = t.Status
	}

	var res ScanResult
	res.Demoted = gtd.PromoteBlocked(tasks)
	res.Promoted = gtd.PromoteReady(tasks, s.now())

	for _, t := range tasks {
		from := before[t.ID]
		if t.Status == from {
			continue
		}
		if err := s.tasks.UpdateStatus(ctx, userID, t.ID, t.Status, t.WaitingFor); err != nil {
			logger.Error("persist lifecycle move failed", "task_id", t.ID, "error", err)
			continue
		}
		lifecycleMoves.WithLabelValues(string(from), string(t.Status)).Inc()
		if s.events != nil {
			s.events.PublishTaskMoved(userID, t, from)
		}
	}

	return res, nil
}

// GetSuggestions runs the recommendation pipeline over the user's
// current collection.
func (s *TaskService) GetSuggestions(ctx context.Context, userID int64, prefs gtd.Preferences) ([]gtd.ScoredTask, error) {
	tasks, err := s.tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	statuses, err := s.projects.StatusesByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	suggestionRequests.Inc()
	return gtd.Suggest(tasks, prefs, statuses, s.now()), nil
}

// Complete marks a task done. A recurring task schedules its next
// occurrence as a fresh next action with advanced dates; the completed
// task itself stays terminal. Returns the completed task and the next
// occurrence, if any.
func (s *TaskService) Complete(ctx context.Context, userID int64, id string) (*domain.Task, *domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	if t.IsDone() {
		return t, nil, nil
	}

	now := s.now()
	t.Complete(now)
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, nil, err
	}

	if t.Recurrence == domain.RecurrenceNone {
		return t, nil, nil
	}

	next := &domain.Task{
		ID:               uuid.NewString(),
		UserID:           t.UserID,
		Title:            t.Title,
		Description:      t.Description,
		Status:           domain.StatusNext,
		ProjectID:        t.ProjectID,
		Contexts:         t.Contexts,
		Energy:           t.Energy,
		EstimatedMinutes: t.EstimatedMinutes,
		Recurrence:       t.Recurrence,
	}
	if t.DueDate != nil {
		due := NextOccurrence(*t.DueDate, t.Recurrence)
		next.DueDate = &due
	}
	if t.DeferDate != nil {
		deferDate := NextOccurrence(*t.DeferDate, t.Recurrence)
		next.DeferDate = &deferDate
	}
	if err := s.tasks.Create(ctx, next); err != nil {
		return nil, nil, err
	}
	return t, next, nil
}
