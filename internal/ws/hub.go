// Package ws pushes task lifecycle events to connected clients. Each
// user gets a private feed; the lifecycle scans publish a task_moved
// event for every status change they persist.
package ws

import (
	"encoding/json"
	"sync"

	"gtd_assistant/internal/domain"
	"gtd_assistant/internal/logger"
)

type Hub struct {
	mu      sync.RWMutex
	clients map[int64]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[int64]map[*Client]struct{})}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.UserID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.UserID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.UserID)
	}
}

// PublishTaskMoved fans a lifecycle move out to the user's connections.
// Slow clients are skipped, not waited on.
func (h *Hub) PublishTaskMoved(userID int64, task *domain.Task, from domain.Status) {
	payload, err := json.Marshal(Event{Type: EventTaskMoved, Task: task, From: string(from)})
	if err != nil {
		logger.Error("marshal task event failed", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.Send <- payload:
		default:
			logger.Warn("dropping event for slow ws client", "user_id", userID)
		}
	}
}
