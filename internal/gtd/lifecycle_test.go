package gtd

import (
	"testing"
	"time"

	"gtd_assistant/internal/domain"
)

var scanNow = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

func TestPromoteBlockedDemotesUnmetNext(t *testing.T) {
	taskY := &domain.Task{ID: "y", Status: domain.StatusNext}
	taskX := &domain.Task{ID: "x", Status: domain.StatusNext, WaitingFor: []string{"y"}}
	tasks := []*domain.Task{taskX, taskY}

	if got := PromoteBlocked(tasks); got != 1 {
		t.Fatalf("PromoteBlocked = %d; want 1", got)
	}
	if taskX.Status != domain.StatusWaiting {
		t.Fatalf("taskX status = %s; want waiting", taskX.Status)
	}
	if taskY.Status != domain.StatusNext {
		t.Fatalf("taskY status = %s; want next (untouched)", taskY.Status)
	}

	// second scan is a no-op
	if got := PromoteBlocked(tasks); got != 0 {
		t.Fatalf("second PromoteBlocked = %d; want 0", got)
	}
}

func TestPromoteBlockedScope(t *testing.T) {
	cases := []struct {
		name   string
		task   domain.Task
		want   domain.Status
		moved  int
	}{
		{"someday with unmet dep is demoted",
			domain.Task{ID: "a", Status: domain.StatusSomeday, WaitingFor: []string{"open"}},
			domain.StatusWaiting, 1},
		{"inbox is never demoted",
			domain.Task{ID: "b", Status: domain.StatusInbox, WaitingFor: []string{"open"}},
			domain.StatusInbox, 0},
		{"completed is terminal",
			domain.Task{ID: "c", Status: domain.StatusCompleted, Completed: true, WaitingFor: []string{"open"}},
			domain.StatusCompleted, 0},
		{"next with met deps stays",
			domain.Task{ID: "d", Status: domain.StatusNext, WaitingFor: []string{"gone"}},
			domain.StatusNext, 0},
	}

	for _, tc := range cases {
		blocker := &domain.Task{ID: "open", Status: domain.StatusNext}
		task := tc.task
		moved := PromoteBlocked([]*domain.Task{&task, blocker})
		if moved != tc.moved || task.Status != tc.want {
			t.Fatalf("%s: moved=%d status=%s; want moved=%d status=%s",
				tc.name, moved, task.Status, tc.moved, tc.want)
		}
	}
}

func TestPromoteReadyClearsSatisfiedWaitingFor(t *testing.T) {
	taskY := &domain.Task{ID: "y", Status: domain.StatusCompleted, Completed: true}
	taskX := &domain.Task{ID: "x", Status: domain.StatusWaiting, WaitingFor: []string{"y"}}
	tasks := []*domain.Task{taskX, taskY}

	if got := PromoteReady(tasks, scanNow); got != 1 {
		t.Fatalf("PromoteReady = %d; want 1", got)
	}
	if taskX.Status != domain.StatusNext {
		t.Fatalf("taskX status = %s; want next", taskX.Status)
	}
	if len(taskX.WaitingFor) != 0 {
		t.Fatalf("waiting-for set not cleared: %v", taskX.WaitingFor)
	}
}

func TestPromoteReadyRules(t *testing.T) {
	cases := []struct {
		name  string
		task  domain.Task
		want  domain.Status
		moved int
	}{
		{"unmet dependency stays parked",
			domain.Task{ID: "a", Status: domain.StatusWaiting, WaitingFor: []string{"open"}},
			domain.StatusWaiting, 0},
		{"defer date arrived",
			domain.Task{ID: "b", Status: domain.StatusWaiting, DeferDate: day(2025, 1, 10)},
			domain.StatusNext, 1},
		{"defer date still ahead",
			domain.Task{ID: "c", Status: domain.StatusWaiting, DeferDate: day(2025, 2, 1)},
			domain.StatusWaiting, 0},
		{"generic waiting is always swept back",
			domain.Task{ID: "d", Status: domain.StatusWaiting},
			domain.StatusNext, 1},
		{"dependency rule wins over defer date",
			domain.Task{ID: "e", Status: domain.StatusWaiting, WaitingFor: []string{"open"}, DeferDate: day(2025, 1, 1)},
			domain.StatusWaiting, 0},
	}

	for _, tc := range cases {
		blocker := &domain.Task{ID: "open", Status: domain.StatusNext}
		task := tc.task
		moved := PromoteReady([]*domain.Task{&task, blocker}, scanNow)
		if moved != tc.moved || task.Status != tc.want {
			t.Fatalf("%s: moved=%d status=%s; want moved=%d status=%s",
				tc.name, moved, task.Status, tc.moved, tc.want)
		}
	}
}

func TestPromoteReadyIdempotent(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "a", Status: domain.StatusWaiting},
		{ID: "b", Status: domain.StatusWaiting, DeferDate: day(2025, 1, 1)},
	}
	if got := PromoteReady(tasks, scanNow); got != 2 {
		t.Fatalf("first PromoteReady = %d; want 2", got)
	}
	if got := PromoteReady(tasks, scanNow); got != 0 {
		t.Fatalf("second PromoteReady = %d; want 0", got)
	}
}

// A cycle of waiting-for references stays parked on both sides without
// crashing either scan.
func TestWaitingForCycleStaysParked(t *testing.T) {
	taskA := &domain.Task{ID: "a", Status: domain.StatusWaiting, WaitingFor: []string{"b"}}
	taskB := &domain.Task{ID: "b", Status: domain.StatusWaiting, WaitingFor: []string{"a"}}
	tasks := []*domain.Task{taskA, taskB}

	if got := PromoteReady(tasks, scanNow); got != 0 {
		t.Fatalf("PromoteReady = %d; want 0", got)
	}
	if got := PromoteBlocked(tasks); got != 0 {
		t.Fatalf("PromoteBlocked = %d; want 0", got)
	}
	if taskA.Status != domain.StatusWaiting || taskB.Status != domain.StatusWaiting {
		t.Fatalf("cycle members moved: a=%s b=%s", taskA.Status, taskB.Status)
	}
}
