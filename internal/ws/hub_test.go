package ws

import (
	"encoding/json"
	"testing"

	"gtd_assistant/internal/domain"
)

func TestPublishTaskMovedReachesOnlyOwner(t *testing.T) {
	hub := NewHub()
	mine := &Client{UserID: 1, Send: make(chan []byte, 1), hub: hub}
	theirs := &Client{UserID: 2, Send: make(chan []byte, 1), hub: hub}
	hub.register(mine)
	hub.register(theirs)

	task := &domain.Task{ID: "t1", UserID: 1, Status: domain.StatusNext}
	hub.PublishTaskMoved(1, task, domain.StatusWaiting)

	select {
	case raw := <-mine.Send:
		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if ev.Type != EventTaskMoved || ev.Task.ID != "t1" || ev.From != "waiting" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("owner received no event")
	}

	select {
	case <-theirs.Send:
		t.Fatal("event leaked to another user")
	default:
	}
}

func TestPublishSkipsSlowClient(t *testing.T) {
	hub := NewHub()
	slow := &Client{UserID: 1, Send: make(chan []byte), hub: hub} // unbuffered, no reader
	hub.register(slow)

	task := &domain.Task{ID: "t1", UserID: 1}
	// must not block
	hub.PublishTaskMoved(1, task, domain.StatusNext)
}
