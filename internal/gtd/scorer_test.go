package gtd

import (
	"testing"
	"time"

	"gtd_assistant/internal/domain"
)

var today = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

func hasReason(s ScoredTask, reason string) bool {
	for _, r := range s.Reasons {
		if r == reason {
			return true
		}
	}
	return false
}

func TestScoreDueDates(t *testing.T) {
	taskA := &domain.Task{ID: "a", Title: "overdue", Status: domain.StatusNext, DueDate: day(2025, 1, 1)}
	taskB := &domain.Task{ID: "b", Title: "due today", Status: domain.StatusNext, DueDate: day(2025, 1, 10)}
	taskC := &domain.Task{ID: "c", Title: "no due date", Status: domain.StatusNext}

	scoreA := Score(taskA, Preferences{}, nil, today)
	scoreB := Score(taskB, Preferences{}, nil, today)
	scoreC := Score(taskC, Preferences{}, nil, today)

	if scoreA.Score < 100 || !hasReason(scoreA, "Overdue") {
		t.Fatalf("overdue task: score=%d reasons=%v; want >=100 with Overdue", scoreA.Score, scoreA.Reasons)
	}
	if scoreB.Score < 75 || !hasReason(scoreB, "Due today") {
		t.Fatalf("due-today task: score=%d reasons=%v; want >=75 with Due today", scoreB.Score, scoreB.Reasons)
	}
	if hasReason(scoreB, "Overdue") {
		t.Fatal("due today must not also count as overdue")
	}
	if scoreC.Score >= scoreB.Score || scoreB.Score >= scoreA.Score {
		t.Fatalf("want scoreC < scoreB < scoreA, got %d %d %d", scoreC.Score, scoreB.Score, scoreA.Score)
	}
}

// An overdue task never scores below an otherwise-identical due-today
// task, whatever else is set on the pair.
func TestOverdueOutranksDueToday(t *testing.T) {
	mk := func(due *time.Time) *domain.Task {
		return &domain.Task{
			Status:           domain.StatusNext,
			DueDate:          due,
			Contexts:         []string{"office"},
			Energy:           domain.EnergyHigh,
			EstimatedMinutes: 10,
			Description:      "notes",
		}
	}
	prefs := Preferences{Context: "office", Energy: domain.EnergyHigh, AvailableMinutes: 30}

	overdue := Score(mk(day(2025, 1, 9)), prefs, nil, today)
	dueToday := Score(mk(day(2025, 1, 10)), prefs, nil, today)
	if overdue.Score < dueToday.Score {
		t.Fatalf("overdue %d < due-today %d", overdue.Score, dueToday.Score)
	}
}

func TestScorePreferenceBonuses(t *testing.T) {
	base := domain.Task{Status: domain.StatusSomeday}

	cases := []struct {
		name   string
		mutate func(*domain.Task)
		prefs  Preferences
		delta  int
		reason string
	}{
		{"context match",
			func(t *domain.Task) { t.Contexts = []string{"home", "errands"} },
			Preferences{Context: "errands"}, BonusContextMatch, "Matches current context (errands)"},
		{"energy match",
			func(t *domain.Task) { t.Energy = domain.EnergyLow },
			Preferences{Energy: domain.EnergyLow}, BonusEnergyMatch, "Matches your energy level (low)"},
		{"fits time budget",
			func(t *domain.Task) { t.EstimatedMinutes = 20 },
			Preferences{AvailableMinutes: 30}, BonusFitsTime, "Fits your available time (20m)"},
		{"too long for budget",
			func(t *domain.Task) { t.EstimatedMinutes = 45 },
			Preferences{AvailableMinutes: 30}, PenaltyTooLong, "Too long for available time (45m)"},
	}

	for _, tc := range cases {
		task := base
		tc.mutate(&task)
		got := Score(&task, tc.prefs, nil, today)
		if got.Score != tc.delta || !hasReason(got, tc.reason) {
			t.Fatalf("%s: score=%d reasons=%v; want score=%d with %q",
				tc.name, got.Score, got.Reasons, tc.delta, tc.reason)
		}
	}
}

func TestScoreAbsentPreferencesWithholdBonusOnly(t *testing.T) {
	task := &domain.Task{Status: domain.StatusSomeday, Contexts: []string{"home"}, Energy: domain.EnergyHigh}
	got := Score(task, Preferences{Context: "office", Energy: domain.EnergyLow}, nil, today)
	if got.Score != 0 {
		t.Fatalf("non-matching preferences must not penalize: score=%d reasons=%v", got.Score, got.Reasons)
	}
}

func TestScoreUnconditionalFactors(t *testing.T) {
	projID := "p1"
	projects := map[string]domain.ProjectStatus{
		"p1": domain.ProjectActive,
		"p2": domain.ProjectArchived,
	}
	archivedID := "p2"

	cases := []struct {
		name   string
		task   domain.Task
		want   int
		reason string
	}{
		{"due soon",
			domain.Task{Status: domain.StatusSomeday, DueDate: day(2025, 1, 12)}, BonusDueSoon, "Due soon"},
		{"quick task without time filter",
			domain.Task{Status: domain.StatusSomeday, EstimatedMinutes: 10}, BonusQuickTask, "Quick task"},
		{"next action",
			domain.Task{Status: domain.StatusNext}, BonusNextAction, "Next Action"},
		{"active project",
			domain.Task{Status: domain.StatusSomeday, ProjectID: &projID}, BonusActiveProject, "Active project"},
		{"waiting penalty",
			domain.Task{Status: domain.StatusWaiting}, PenaltyWaiting, "Waiting for something"},
		{"notes bonus",
			domain.Task{Status: domain.StatusSomeday, Description: "details"}, BonusHasNotes, "Has notes"},
	}

	for _, tc := range cases {
		task := tc.task
		got := Score(&task, Preferences{}, projects, today)
		if got.Score != tc.want || !hasReason(got, tc.reason) {
			t.Fatalf("%s: score=%d reasons=%v; want %d with %q",
				tc.name, got.Score, got.Reasons, tc.want, tc.reason)
		}
	}

	// archived project earns nothing
	task := domain.Task{Status: domain.StatusSomeday, ProjectID: &archivedID}
	if got := Score(&task, Preferences{}, projects, today); got.Score != 0 {
		t.Fatalf("archived project scored %d; want 0", got.Score)
	}
}

// Quick-task bonus is suppressed while a time budget is active; the
// budget comparison takes over instead.
func TestQuickTaskSuppressedByTimeBudget(t *testing.T) {
	task := &domain.Task{Status: domain.StatusSomeday, EstimatedMinutes: 10}
	got := Score(task, Preferences{AvailableMinutes: 60}, nil, today)
	if hasReason(got, "Quick task") {
		t.Fatalf("quick-task bonus applied despite time budget: %v", got.Reasons)
	}
	if !hasReason(got, "Fits your available time (10m)") {
		t.Fatalf("expected time-budget reason, got %v", got.Reasons)
	}
}

func TestReasonOrderIsFixed(t *testing.T) {
	projID := "p1"
	task := &domain.Task{
		Status:           domain.StatusNext,
		DueDate:          day(2025, 1, 1),
		Contexts:         []string{"office"},
		Energy:           domain.EnergyHigh,
		EstimatedMinutes: 10,
		ProjectID:        &projID,
		Description:      "notes",
	}
	prefs := Preferences{Context: "office", Energy: domain.EnergyHigh}
	projects := map[string]domain.ProjectStatus{"p1": domain.ProjectActive}

	got := Score(task, prefs, projects, today)
	want := []string{
		"Matches current context (office)",
		"Matches your energy level (high)",
		"Overdue",
		"Quick task",
		"Next Action",
		"Active project",
		"Has notes",
	}
	if len(got.Reasons) != len(want) {
		t.Fatalf("reasons = %v; want %v", got.Reasons, want)
	}
	for i := range want {
		if got.Reasons[i] != want[i] {
			t.Fatalf("reason[%d] = %q; want %q (full: %v)", i, got.Reasons[i], want[i], got.Reasons)
		}
	}
}
