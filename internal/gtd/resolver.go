// Package gtd holds the task lifecycle engine and the recommendation
// engine. Everything here is pure and in-memory: callers load tasks,
// hand them over together with an explicit "now", and persist whatever
// changed afterwards.
package gtd

import (
	"time"

	"gtd_assistant/internal/domain"
)

// dateOnly truncates t to its calendar date. Due and defer dates are
// compared day-by-day, never by clock time.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IndexByID builds an id lookup over the task collection.
func IndexByID(tasks []*domain.Task) map[string]*domain.Task {
	byID := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	return byID
}

// DependenciesMet reports whether every task in the waiting-for set is
// completed. An id that resolves to no task counts as satisfied: a
// deleted dependency must never block its dependent forever.
func DependenciesMet(t *domain.Task, byID map[string]*domain.Task) bool {
	for _, id := range t.WaitingFor {
		dep, ok := byID[id]
		if !ok {
			continue
		}
		if !dep.IsDone() {
			return false
		}
	}
	return true
}

// Available reports whether the task's defer date has arrived as of the
// given day. No defer date means always available.
func Available(t *domain.Task, asOf time.Time) bool {
	if t.DeferDate == nil {
		return true
	}
	return !dateOnly(*t.DeferDate).After(dateOnly(asOf))
}
