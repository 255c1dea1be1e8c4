package service

import (
	"testing"
	"time"

	"gtd_assistant/internal/domain"
)

func TestNextOccurrence(t *testing.T) {
	from := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		r    domain.Recurrence
		want time.Time
	}{
		{domain.RecurrenceDaily, time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)},
		{domain.RecurrenceWeekly, time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC)},
		{domain.RecurrenceMonthly, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
		{domain.RecurrenceNone, from},
	}

	for _, tc := range cases {
		if got := NextOccurrence(from, tc.r); !got.Equal(tc.want) {
			t.Fatalf("NextOccurrence(%s, %q) = %v; want %v", from, tc.r, got, tc.want)
		}
	}
}
