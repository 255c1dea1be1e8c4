package ws

import "gtd_assistant/internal/domain"

// Event is one message on the task event feed.
type Event struct {
	Type string       `json:"type"`
	Task *domain.Task `json:"task,omitempty"`
	From string       `json:"from,omitempty"`
}

const (
	EventReady     = "ready"
	EventTaskMoved = "task_moved"
)
