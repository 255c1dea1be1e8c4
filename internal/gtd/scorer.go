package gtd

import (
	"fmt"
	"time"

	"gtd_assistant/internal/domain"
)

// Preferences narrow and bias the suggestion list. Every field is
// optional and additive: a non-matching preference withholds its bonus,
// it never excludes a task.
type Preferences struct {
	Context          string        // exact match against a context tag
	Energy           domain.Energy // exact match against the energy tag
	AvailableMinutes int           // time budget; 0 = no budget
	MaxSuggestions   int           // cap on list length; 0 = DefaultMaxSuggestions
	Status           domain.Status // active status view, if any
}

// Scoring weights. The deadline bonuses dominate everything else on
// purpose: an overdue task outranks any pile of small matches.
const (
	BonusOverdue       = 100
	BonusDueToday      = 80
	BonusDueSoon       = 50
	BonusContextMatch  = 20
	BonusEnergyMatch   = 15
	BonusFitsTime      = 15
	PenaltyTooLong     = -20
	BonusQuickTask     = 10
	BonusNextAction    = 10
	BonusActiveProject = 5
	PenaltyWaiting     = -5
	BonusHasNotes      = 2

	// DueSoonDays is the lookahead window for the due-soon bonus.
	DueSoonDays = 3
	// QuickTaskMinutes is the "quick win" duration threshold.
	QuickTaskMinutes = 15

	DefaultMaxSuggestions = 10
)

// ScoredTask is one ranked suggestion: the task, its suitability score
// and the ordered list of reasons that produced it.
type ScoredTask struct {
	Task    *domain.Task `json:"task"`
	Score   int          `json:"score"`
	Reasons []string     `json:"reasons"`
}

// Score rates a single candidate against the preferences. Reasons are
// appended in a fixed order - preference matches first, then the
// unconditional factors from most to least decisive - so the list reads
// as a rationale, not a bag.
func Score(t *domain.Task, prefs Preferences, projects map[string]domain.ProjectStatus, now time.Time) ScoredTask {
	s := ScoredTask{Task: t}

	if prefs.Context != "" && t.HasContext(prefs.Context) {
		s.add(BonusContextMatch, fmt.Sprintf("Matches current context (%s)", prefs.Context))
	}
	if prefs.Energy != "" && t.Energy == prefs.Energy {
		s.add(BonusEnergyMatch, fmt.Sprintf("Matches your energy level (%s)", prefs.Energy))
	}
	if prefs.AvailableMinutes > 0 && t.EstimatedMinutes > 0 {
		if t.EstimatedMinutes <= prefs.AvailableMinutes {
			s.add(BonusFitsTime, fmt.Sprintf("Fits your available time (%dm)", t.EstimatedMinutes))
		} else {
			s.add(PenaltyTooLong, fmt.Sprintf("Too long for available time (%dm)", t.EstimatedMinutes))
		}
	}

	today := dateOnly(now)
	if t.DueDate != nil {
		due := dateOnly(*t.DueDate)
		switch {
		case due.Before(today):
			s.add(BonusOverdue, "Overdue")
		case due.Equal(today):
			s.add(BonusDueToday, "Due today")
		case !due.After(today.AddDate(0, 0, DueSoonDays)):
			s.add(BonusDueSoon, "Due soon")
		}
	}
	if prefs.AvailableMinutes == 0 && t.EstimatedMinutes > 0 && t.EstimatedMinutes <= QuickTaskMinutes {
		s.add(BonusQuickTask, "Quick task")
	}
	if t.Status == domain.StatusNext {
		s.add(BonusNextAction, "Next Action")
	}
	if t.ProjectID != nil && projects[*t.ProjectID] == domain.ProjectActive {
		s.add(BonusActiveProject, "Active project")
	}
	if t.Status == domain.StatusWaiting {
		s.add(PenaltyWaiting, "Waiting for something")
	}
	if t.Description != "" {
		s.add(BonusHasNotes, "Has notes")
	}

	return s
}

func (s *ScoredTask) add(points int, reason string) {
	s.Score += points
	s.Reasons = append(s.Reasons, reason)
}
