package session

// Verdict is the tri-state correctness outcome for a question.
type Verdict int

const (
	// VerdictUnknown means not yet graded or judged.
	VerdictUnknown Verdict = iota
	// VerdictCorrect means the answer was graded or judged correct.
	VerdictCorrect
	// VerdictWrong means the answer was graded or judged wrong.
	VerdictWrong
)

// Record is the mutable per-question answer state. Submitted only ever moves
// false to true, and the verdict is fixed once it leaves VerdictUnknown.
type Record struct {
	Selected  []int
	Submitted bool
	Verdict   Verdict
}

// IsSelected reports whether an option index is part of the selection.
func (r Record) IsSelected(idx int) bool {
	for _, selected := range r.Selected {
		if selected == idx {
			return true
		}
	}
	return false
}

// HasSelection reports whether any option is selected.
func (r Record) HasSelection() bool {
	return len(r.Selected) > 0
}

func (r Record) clone() Record {
	cloned := r
	if r.Selected != nil {
		cloned.Selected = append([]int(nil), r.Selected...)
	}
	return cloned
}
