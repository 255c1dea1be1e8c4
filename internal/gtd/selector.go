package gtd

import (
	"sort"
	"time"

	"gtd_assistant/internal/domain"
)

// Suggest filters, scores and ranks the collection into a suggestion
// list. Candidates must match the status view (if one is set), be
// incomplete, have their dependencies met and be past any defer date.
// The sort is stable and score is the only key, so equal scores keep
// the input order of the collection.
func Suggest(tasks []*domain.Task, prefs Preferences, projects map[string]domain.ProjectStatus, now time.Time) []ScoredTask {
	byID := IndexByID(tasks)

	scored := make([]ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		if prefs.Status != "" && t.Status != prefs.Status {
			continue
		}
		if t.IsDone() {
			continue
		}
		if !DependenciesMet(t, byID) || !Available(t, now) {
			continue
		}
		scored = append(scored, Score(t, prefs, projects, now))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	max := prefs.MaxSuggestions
	if max <= 0 {
		max = DefaultMaxSuggestions
	}
	if len(scored) > max {
		scored = scored[:max]
	}
	return scored
}
