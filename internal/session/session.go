// Package session owns the answer state and navigation engine for one quiz
// run. It has no UI dependency: a renderer reads the query surface and
// drives the intent surface, and invalid intents are silent no-ops so the
// engine stays consistent even when the renderer fails to guard them.
package session

import (
	"time"

	"github.com/google/uuid"

	"quizdeck/internal/bank"
)

// DefaultFeedbackDelay is how long the verdict banner stays visible unless
// navigation or a new submission dismisses it first.
const DefaultFeedbackDelay = 3 * time.Second

// Options configures a session.
type Options struct {
	FeedbackDelay time.Duration
}

// Session tracks one quiz run over an immutable bank: the current position,
// the sparse per-question answer records, the completion flag, and the
// transient feedback banner.
type Session struct {
	id        string
	bank      bank.Bank
	position  int
	records   map[int]*Record
	completed bool

	feedbackVisible bool
	feedbackSeq     int
	feedbackDelay   time.Duration
}

// New starts a session at the first question of a validated bank.
func New(b bank.Bank, opts Options) *Session {
	delay := opts.FeedbackDelay
	if delay <= 0 {
		delay = DefaultFeedbackDelay
	}
	return &Session{
		id:            uuid.NewString(),
		bank:          b,
		records:       map[int]*Record{},
		feedbackDelay: delay,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Len returns the number of questions in the bank.
func (s *Session) Len() int { return s.bank.Len() }

// Position returns the current question position.
func (s *Session) Position() int { return s.position }

// Completed reports whether the session advanced past the last question.
func (s *Session) Completed() bool { return s.completed }

// Counts returns the bank's per-kind question counts.
func (s *Session) Counts() bank.Counts { return s.bank.Counts() }

// Question returns the question at a position.
func (s *Session) Question(pos int) (bank.Question, bool) {
	if pos < 0 || pos >= s.bank.Len() {
		return bank.Question{}, false
	}
	return s.bank.Questions[pos], true
}

// Current returns the question at the current position.
func (s *Session) Current() bank.Question {
	question, _ := s.Question(s.position)
	return question
}

// Record returns a copy of the answer record at a position. Absent records
// read as fresh defaults without being materialized.
func (s *Session) Record(pos int) Record {
	if record, ok := s.records[pos]; ok {
		return record.clone()
	}
	return Record{}
}

// Select records an option choice. Submitted records are frozen, text
// questions have no selection, single replaces, multiple toggles.
func (s *Session) Select(pos, idx int) {
	question, ok := s.Question(pos)
	if !ok || !question.Kind.IsChoice() {
		return
	}
	if idx < 0 || idx >= len(question.Options) {
		return
	}
	record := s.record(pos)
	if record.Submitted {
		return
	}
	switch question.Kind {
	case bank.Single:
		record.Selected = []int{idx}
	case bank.Multiple:
		record.Selected = toggleIndex(record.Selected, idx)
	}
}

// Submit freezes the record and grades choice kinds. Text kinds reveal the
// reference answer and wait for a manual judgment. Submitting twice, or
// submitting a choice question with nothing selected, is a no-op.
func (s *Session) Submit(pos int) {
	question, ok := s.Question(pos)
	if !ok {
		return
	}
	record := s.record(pos)
	if record.Submitted {
		return
	}
	switch question.Kind {
	case bank.Single:
		if !record.HasSelection() {
			return
		}
		record.Verdict = verdictFor(GradeSingle(record.Selected[0], question.AnswerIndex))
	case bank.Multiple:
		if !record.HasSelection() {
			return
		}
		record.Verdict = verdictFor(GradeMultiple(record.Selected, question.AnswerSet))
	case bank.Text:
		// Reveal only; the verdict stays unknown until judged.
	}
	record.Submitted = true
	if record.Verdict != VerdictUnknown {
		s.showFeedback()
	}
}

// Judge applies a manual correctness decision to a submitted text question.
// The first judgment wins; later calls and calls on choice kinds are no-ops.
func (s *Session) Judge(pos int, correct bool) {
	question, ok := s.Question(pos)
	if !ok || question.Kind != bank.Text {
		return
	}
	record := s.record(pos)
	if !record.Submitted || record.Verdict != VerdictUnknown {
		return
	}
	record.Verdict = verdictFor(correct)
	s.showFeedback()
}

// Advance moves to the next question, or completes the session when the
// current question is the last one.
func (s *Session) Advance() {
	if s.completed {
		return
	}
	s.dismissFeedback()
	if s.position < s.bank.Len()-1 {
		s.position++
		return
	}
	s.completed = true
}

// Retreat moves to the previous question, discarding the record that was
// there so a revisited question always presents fresh. At the first
// question it reports an exit-to-setup instead of navigating.
func (s *Session) Retreat() (exited bool) {
	if s.completed {
		return false
	}
	s.dismissFeedback()
	if s.position == 0 {
		return true
	}
	s.position--
	delete(s.records, s.position)
	return false
}

// Jump moves directly to any question. Unlike Retreat it preserves every
// record, including the one being left.
func (s *Session) Jump(pos int) {
	if s.completed || pos < 0 || pos >= s.bank.Len() {
		return
	}
	s.dismissFeedback()
	s.position = pos
}

// Restart wipes all records and returns to the first question.
func (s *Session) Restart() {
	s.records = map[int]*Record{}
	s.position = 0
	s.completed = false
	s.dismissFeedback()
}

func (s *Session) record(pos int) *Record {
	if record, ok := s.records[pos]; ok {
		return record
	}
	record := &Record{}
	s.records[pos] = record
	return record
}

func toggleIndex(selected []int, idx int) []int {
	for i, existing := range selected {
		if existing == idx {
			return append(selected[:i], selected[i+1:]...)
		}
	}
	return append(selected, idx)
}

func verdictFor(correct bool) Verdict {
	if correct {
		return VerdictCorrect
	}
	return VerdictWrong
}
