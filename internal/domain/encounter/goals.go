package encounter

import "strings"

// GoalInput carries the parallel value sequences of a goal-entry grid. Rows
// align by index; a missing index reads as empty.
type GoalInput struct {
	Texts    []string `json:"texts"`
	Dates    []string `json:"dates"`
	Statuses []string `json:"statuses"`
}

func valueAt(vals []string, i int) string {
	if i < len(vals) {
		return strings.TrimSpace(vals[i])
	}
	return ""
}

// ParseGoals assembles goal rows from parallel input sequences. A row is kept
// when it has text or a target date; a blank status defaults to Continue.
// When nothing survives, a single empty placeholder row is returned so the
// goal section is never absent from a note.
func ParseGoals(in GoalInput) []Goal {
	n := max(len(in.Texts), len(in.Dates), len(in.Statuses))

	var goals []Goal
	for i := 0; i < n; i++ {
		text := valueAt(in.Texts, i)
		date := valueAt(in.Dates, i)
		status := valueAt(in.Statuses, i)
		if text == "" && date == "" {
			continue
		}
		if status == "" {
			status = "Continue"
		}
		goals = append(goals, Goal{Text: text, TargetDate: date, Status: status})
	}

	if len(goals) == 0 {
		goals = []Goal{{Status: "Continue"}}
	}
	return goals
}
