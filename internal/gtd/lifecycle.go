package gtd

import (
	"time"

	"gtd_assistant/internal/domain"
)

// PromoteBlocked demotes actionable tasks whose dependencies are not
// met to waiting. Only next and someday tasks are touched: inbox tasks
// are not triaged yet, waiting tasks are already parked and completed
// is terminal. Returns the number of tasks moved. Idempotent - a second
// pass over the same collection moves nothing.
func PromoteBlocked(tasks []*domain.Task) int {
	byID := IndexByID(tasks)
	moved := 0
	for _, t := range tasks {
		if t.IsDone() {
			continue
		}
		if t.Status != domain.StatusNext && t.Status != domain.StatusSomeday {
			continue
		}
		if !DependenciesMet(t, byID) {
			t.Status = domain.StatusWaiting
			moved++
		}
	}
	return moved
}

// PromoteReady moves waiting tasks whose blocking condition has cleared
// back to next. Per task the first matching rule wins:
//
//  1. a non-empty waiting-for set: promote and clear the set once every
//     dependency is completed;
//  2. otherwise a defer date: promote once the date has arrived;
//  3. otherwise promote unconditionally - a waiting task with no tracked
//     blocking condition is swept back to actionable, since nothing
//     records why it was parked.
//
// Returns the number of tasks moved. Idempotent.
func PromoteReady(tasks []*domain.Task, now time.Time) int {
	byID := IndexByID(tasks)
	moved := 0
	for _, t := range tasks {
		if t.IsDone() || t.Status != domain.StatusWaiting {
			continue
		}
		switch {
		case len(t.WaitingFor) > 0:
			if DependenciesMet(t, byID) {
				t.Status = domain.StatusNext
				t.WaitingFor = nil
				moved++
			}
		case t.DeferDate != nil:
			if Available(t, now) {
				t.Status = domain.StatusNext
				moved++
			}
		default:
			t.Status = domain.StatusNext
			moved++
		}
	}
	return moved
}
