package service

import (
	"time"

	"gtd_assistant/internal/domain"
)

// NextOccurrence advances a date by one recurrence period. Monthly
// recurrence uses calendar months, so Jan 31 rolls over the way
// time.AddDate does.
func NextOccurrence(from time.Time, r domain.Recurrence) time.Time {
	switch r {
	case domain.RecurrenceDaily:
		return from.AddDate(0, 0, 1)
	case domain.RecurrenceWeekly:
		return from.AddDate(0, 0, 7)
	case domain.RecurrenceMonthly:
		return from.AddDate(0, 1, 0)
	}
	return from
}
