package gtd

import (
	"fmt"
	"testing"

	"gtd_assistant/internal/domain"
)

func TestSuggestFiltersIneligible(t *testing.T) {
	blocker := &domain.Task{ID: "blocker", Status: domain.StatusNext, Title: "blocker"}
	tasks := []*domain.Task{
		blocker,
		{ID: "done", Status: domain.StatusCompleted, Completed: true},
		{ID: "blocked", Status: domain.StatusNext, WaitingFor: []string{"blocker"}},
		{ID: "deferred", Status: domain.StatusNext, DeferDate: day(2025, 2, 1)},
		{ID: "ok", Status: domain.StatusNext},
	}

	got := Suggest(tasks, Preferences{}, nil, today)
	for _, s := range got {
		switch s.Task.ID {
		case "done", "blocked", "deferred":
			t.Fatalf("ineligible task %q in suggestions", s.Task.ID)
		}
	}
	if len(got) != 2 {
		t.Fatalf("len = %d; want 2 (blocker, ok)", len(got))
	}
}

func TestSuggestStatusScope(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "a", Status: domain.StatusNext},
		{ID: "b", Status: domain.StatusSomeday},
	}
	got := Suggest(tasks, Preferences{Status: domain.StatusSomeday}, nil, today)
	if len(got) != 1 || got[0].Task.ID != "b" {
		t.Fatalf("status scope ignored: %+v", got)
	}
}

func TestSuggestStableTies(t *testing.T) {
	// five identical tasks - every score ties, input order must survive
	var tasks []*domain.Task
	for i := 0; i < 5; i++ {
		tasks = append(tasks, &domain.Task{
			ID:     fmt.Sprintf("t%d", i),
			Status: domain.StatusNext,
		})
	}

	got := Suggest(tasks, Preferences{}, nil, today)
	for i, s := range got {
		if want := fmt.Sprintf("t%d", i); s.Task.ID != want {
			t.Fatalf("position %d: got %s; want %s", i, s.Task.ID, want)
		}
	}
}

func TestSuggestTruncatesToHighestScoring(t *testing.T) {
	var tasks []*domain.Task
	// ten eligible tasks, three of them overdue
	for i := 0; i < 10; i++ {
		task := &domain.Task{ID: fmt.Sprintf("t%d", i), Status: domain.StatusNext}
		if i >= 7 {
			task.DueDate = day(2025, 1, 1)
		}
		tasks = append(tasks, task)
	}

	got := Suggest(tasks, Preferences{MaxSuggestions: 3}, nil, today)
	if len(got) != 3 {
		t.Fatalf("len = %d; want 3", len(got))
	}
	for _, s := range got {
		if !hasReason(s, "Overdue") {
			t.Fatalf("expected the three overdue tasks on top, got %s (%v)", s.Task.ID, s.Reasons)
		}
	}
}

func TestSuggestDefaultCap(t *testing.T) {
	var tasks []*domain.Task
	for i := 0; i < 25; i++ {
		tasks = append(tasks, &domain.Task{ID: fmt.Sprintf("t%d", i), Status: domain.StatusNext})
	}
	if got := Suggest(tasks, Preferences{}, nil, today); len(got) != DefaultMaxSuggestions {
		t.Fatalf("len = %d; want default cap %d", len(got), DefaultMaxSuggestions)
	}
}

// A waiting task whose block just cleared is still suggestible, ranked
// below an equivalent next action.
func TestSuggestWaitingRanksBelowNext(t *testing.T) {
	tasks := []*domain.Task{
		{ID: "parked", Status: domain.StatusWaiting},
		{ID: "action", Status: domain.StatusNext},
	}
	got := Suggest(tasks, Preferences{}, nil, today)
	if len(got) != 2 || got[0].Task.ID != "action" || got[1].Task.ID != "parked" {
		t.Fatalf("unexpected order: %+v", got)
	}
}
