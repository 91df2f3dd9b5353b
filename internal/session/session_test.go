package session

import (
	"testing"

	"quizdeck/internal/bank"
)

func testBank(t *testing.T) bank.Bank {
	t.Helper()
	b, err := bank.Parse([]byte(`[
		{"text":"S1","options":["A","B","C"],"answer":1},
		{"type":"multiple","text":"M1","options":["A","B","C"],"answer":[2,0]},
		{"type":"text","text":"T1","answer":"ref"}
	]`))
	if err != nil {
		t.Fatalf("parse test bank: %v", err)
	}
	return b
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return New(testBank(t), Options{})
}

// TestSingleChoiceGrading verifies submit grades the sole selection against
// the canonical index.
func TestSingleChoiceGrading(t *testing.T) {
	cases := []struct {
		name    string
		pick    int
		verdict Verdict
	}{
		{name: "correct pick", pick: 1, verdict: VerdictCorrect},
		{name: "wrong pick", pick: 0, verdict: VerdictWrong},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sess := newTestSession(t)
			sess.Select(0, tc.pick)
			sess.Submit(0)
			record := sess.Record(0)
			if !record.Submitted {
				t.Fatalf("expected submitted record")
			}
			if record.Verdict != tc.verdict {
				t.Fatalf("expected verdict %d, got %d", tc.verdict, record.Verdict)
			}
		})
	}
}

// TestSingleChoiceReplacesSelection verifies single choice keeps exactly
// one selected option.
func TestSingleChoiceReplacesSelection(t *testing.T) {
	sess := newTestSession(t)
	sess.Select(0, 0)
	sess.Select(0, 2)
	record := sess.Record(0)
	if len(record.Selected) != 1 || record.Selected[0] != 2 {
		t.Fatalf("expected selection [2], got %v", record.Selected)
	}
}

// TestMultipleChoiceSetGrading verifies toggling to the canonical set
// grades correct regardless of order and intermediate toggles.
func TestMultipleChoiceSetGrading(t *testing.T) {
	sess := newTestSession(t)
	sess.Select(1, 2)
	sess.Select(1, 1)
	sess.Select(1, 1) // toggle back off
	sess.Select(1, 0)
	sess.Submit(1)
	if verdict := sess.Record(1).Verdict; verdict != VerdictCorrect {
		t.Fatalf("expected correct verdict, got %d", verdict)
	}
}

// TestMultipleChoiceSubsetIsWrong verifies there is no partial credit.
func TestMultipleChoiceSubsetIsWrong(t *testing.T) {
	sess := newTestSession(t)
	sess.Select(1, 0)
	sess.Submit(1)
	if verdict := sess.Record(1).Verdict; verdict != VerdictWrong {
		t.Fatalf("expected wrong verdict for subset, got %d", verdict)
	}
}

// TestSubmitIsIdempotent verifies a second submit never regrades a since
// mutated record.
func TestSubmitIsIdempotent(t *testing.T) {
	sess := newTestSession(t)
	sess.Select(0, 1)
	sess.Submit(0)
	sess.Submit(0)
	if verdict := sess.Record(0).Verdict; verdict != VerdictCorrect {
		t.Fatalf("expected verdict to survive resubmit, got %d", verdict)
	}
}

// TestSelectAfterSubmitIsFrozen verifies submitted records ignore further
// selection intents.
func TestSelectAfterSubmitIsFrozen(t *testing.T) {
	sess := newTestSession(t)
	sess.Select(0, 0)
	sess.Submit(0)
	sess.Select(0, 1)
	record := sess.Record(0)
	if len(record.Selected) != 1 || record.Selected[0] != 0 {
		t.Fatalf("expected frozen selection [0], got %v", record.Selected)
	}
}

// TestEmptyChoiceSubmitIgnored verifies submitting a choice question with
// no selection leaves the record untouched.
func TestEmptyChoiceSubmitIgnored(t *testing.T) {
	sess := newTestSession(t)
	sess.Submit(0)
	if sess.Record(0).Submitted {
		t.Fatalf("expected empty submit to be ignored")
	}
}

// TestTextSubmitAndJudge verifies text questions reveal on submit, grade on
// judgment, and lock the first judgment in.
func TestTextSubmitAndJudge(t *testing.T) {
	sess := newTestSession(t)
	sess.Judge(2, true) // before submit: ignored
	if sess.Record(2).Verdict != VerdictUnknown {
		t.Fatalf("expected pre-submit judgment to be ignored")
	}
	sess.Submit(2)
	record := sess.Record(2)
	if !record.Submitted || record.Verdict != VerdictUnknown {
		t.Fatalf("expected revealed but unjudged record, got %+v", record)
	}
	sess.Judge(2, true)
	sess.Judge(2, false) // already judged: no-op
	if verdict := sess.Record(2).Verdict; verdict != VerdictCorrect {
		t.Fatalf("expected first judgment to stick, got %d", verdict)
	}
}

// TestJudgeOnChoiceIgnored verifies manual judgment only applies to text
// questions.
func TestJudgeOnChoiceIgnored(t *testing.T) {
	sess := newTestSession(t)
	sess.Select(0, 0)
	sess.Submit(0)
	sess.Judge(0, true)
	if verdict := sess.Record(0).Verdict; verdict != VerdictWrong {
		t.Fatalf("expected graded verdict to stand, got %d", verdict)
	}
}

// TestSelectOnTextIgnored verifies text questions have no selection.
func TestSelectOnTextIgnored(t *testing.T) {
	sess := newTestSession(t)
	sess.Select(2, 0)
	if sess.Record(2).HasSelection() {
		t.Fatalf("expected no selection on text question")
	}
}

// TestRetreatDiscardsDestinationRecord verifies returning to a previous
// question presents it fresh.
func TestRetreatDiscardsDestinationRecord(t *testing.T) {
	sess := newTestSession(t)
	sess.Select(0, 1)
	sess.Submit(0)
	sess.Advance()
	if exited := sess.Retreat(); exited {
		t.Fatalf("did not expect exit from position 1")
	}
	if sess.Position() != 0 {
		t.Fatalf("expected position 0, got %d", sess.Position())
	}
	record := sess.Record(0)
	if record.Submitted || record.HasSelection() {
		t.Fatalf("expected fresh record after retreat, got %+v", record)
	}
}

// TestRetreatAtStartSignalsExit verifies position 0 has no predecessor.
func TestRetreatAtStartSignalsExit(t *testing.T) {
	sess := newTestSession(t)
	if !sess.Retreat() {
		t.Fatalf("expected exit signal at position 0")
	}
	if sess.Position() != 0 {
		t.Fatalf("expected position unchanged, got %d", sess.Position())
	}
}

// TestJumpPreservesRecords verifies random access keeps every record,
// including the one being left.
func TestJumpPreservesRecords(t *testing.T) {
	sess := newTestSession(t)
	sess.Select(0, 1)
	sess.Submit(0)
	sess.Jump(2)
	if sess.Position() != 2 {
		t.Fatalf("expected position 2, got %d", sess.Position())
	}
	sess.Jump(0)
	record := sess.Record(0)
	if !record.Submitted || record.Verdict != VerdictCorrect {
		t.Fatalf("expected preserved record after jump, got %+v", record)
	}
}

// TestJumpOutOfRangeIgnored verifies invalid jump targets are no-ops.
func TestJumpOutOfRangeIgnored(t *testing.T) {
	sess := newTestSession(t)
	sess.Jump(99)
	sess.Jump(-1)
	if sess.Position() != 0 {
		t.Fatalf("expected position 0, got %d", sess.Position())
	}
}

// TestAdvancePastEndCompletes verifies completion is only set past the
// last question and restart returns to a clean start.
func TestAdvancePastEndCompletes(t *testing.T) {
	sess := newTestSession(t)
	sess.Advance()
	sess.Advance()
	if sess.Completed() {
		t.Fatalf("completed too early")
	}
	sess.Advance()
	if !sess.Completed() {
		t.Fatalf("expected completed session")
	}
	sess.Advance() // terminal: no-op
	sess.Jump(1)   // terminal: no-op
	if !sess.Completed() {
		t.Fatalf("expected completion to be terminal")
	}

	sess.Restart()
	if sess.Completed() || sess.Position() != 0 {
		t.Fatalf("expected fresh session after restart")
	}
	for pos := 0; pos < sess.Len(); pos++ {
		record := sess.Record(pos)
		if record.Submitted || record.HasSelection() {
			t.Fatalf("expected empty record at %d after restart", pos)
		}
	}
}

// TestRecordReadDoesNotMaterialize verifies reading a record keeps the
// sparse map sparse.
func TestRecordReadDoesNotMaterialize(t *testing.T) {
	sess := newTestSession(t)
	_ = sess.Record(1)
	if len(sess.records) != 0 {
		t.Fatalf("expected sparse records, got %d entries", len(sess.records))
	}
}

// TestRecordCopyIsDetached verifies mutating a returned record does not
// leak into the session.
func TestRecordCopyIsDetached(t *testing.T) {
	sess := newTestSession(t)
	sess.Select(0, 0)
	record := sess.Record(0)
	record.Selected[0] = 2
	if got := sess.Record(0).Selected[0]; got != 0 {
		t.Fatalf("expected session state unchanged, got %d", got)
	}
}
