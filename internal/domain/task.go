package domain

import "time"

// Status - lifecycle state of a task (GTD lists)
type Status string

const (
	StatusInbox     Status = "inbox"
	StatusNext      Status = "next"
	StatusWaiting   Status = "waiting"
	StatusSomeday   Status = "someday"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the five known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusInbox, StatusNext, StatusWaiting, StatusSomeday, StatusCompleted:
		return true
	}
	return false
}

// Energy - how much focus a task needs
type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

// Recurrence - repeat schedule for a task
type Recurrence string

const (
	RecurrenceNone    Recurrence = ""
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Task - single GTD task item
type Task struct {
	ID               string     `db:"id" json:"id"`
	UserID           int64      `db:"user_id" json:"user_id"`
	Title            string     `db:"title" json:"title"`
	Description      string     `db:"description" json:"description,omitempty"`
	Status           Status     `db:"status" json:"status"`
	Completed        bool       `db:"completed" json:"completed"`
	CompletedAt      *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	DueDate          *time.Time `db:"due_date" json:"due_date,omitempty"`
	DeferDate        *time.Time `db:"defer_date" json:"defer_date,omitempty"`
	WaitingFor       []string   `db:"waiting_for" json:"waiting_for,omitempty"`
	ProjectID        *string    `db:"project_id" json:"project_id,omitempty"`
	Contexts         []string   `db:"contexts" json:"contexts,omitempty"`
	Energy           Energy     `db:"energy" json:"energy,omitempty"`
	EstimatedMinutes int        `db:"estimated_minutes" json:"estimated_minutes,omitempty"`
	Recurrence       Recurrence `db:"recurrence" json:"recurrence,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// IsDone reports whether the task is finished, by flag or by status.
func (t *Task) IsDone() bool {
	return t.Completed || t.Status == StatusCompleted
}

// HasContext reports whether the task carries the given context tag.
func (t *Task) HasContext(ctx string) bool {
	for _, c := range t.Contexts {
		if c == ctx {
			return true
		}
	}
	return false
}

// Complete marks the task completed at the given time.
func (t *Task) Complete(at time.Time) {
	t.Completed = true
	t.Status = StatusCompleted
	t.CompletedAt = &at
}
