package cucumber

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"quizdeck/internal/bank"
	"quizdeck/internal/session"
)

// featureState holds the scenario's bank, session, and last load error.
type featureState struct {
	document []byte
	loadErr  error
	sess     *session.Session
}

// InitializeScenario wires the quiz engine steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		*state = featureState{}
		return ctx, nil
	})

	ctx.Step(`^a question bank:$`, state.aQuestionBank)
	ctx.Step(`^the bank is loaded$`, state.theBankIsLoaded)
	ctx.Step(`^loading fails mentioning "([^"]*)"$`, state.loadingFailsMentioning)
	ctx.Step(`^the bank loads with (\d+) questions?$`, state.theBankLoadsWith)
	ctx.Step(`^the operator selects option (\d+)$`, state.operatorSelectsOption)
	ctx.Step(`^the operator submits$`, state.operatorSubmits)
	ctx.Step(`^the operator judges the answer (correct|wrong)$`, state.operatorJudges)
	ctx.Step(`^the operator advances$`, state.operatorAdvances)
	ctx.Step(`^the operator retreats$`, state.operatorRetreats)
	ctx.Step(`^the operator jumps to question (\d+)$`, state.operatorJumps)
	ctx.Step(`^the operator restarts$`, state.operatorRestarts)
	ctx.Step(`^the current question is graded (correct|wrong)$`, state.currentGraded)
	ctx.Step(`^the current question is revealed but unjudged$`, state.currentRevealedUnjudged)
	ctx.Step(`^question (\d+) is fresh$`, state.questionIsFresh)
	ctx.Step(`^question (\d+) is still graded correct$`, state.questionStillCorrect)
	ctx.Step(`^the session is complete$`, state.sessionComplete)
	ctx.Step(`^the session is not complete$`, state.sessionNotComplete)
}

func (s *featureState) aQuestionBank(doc *godog.DocString) error {
	s.document = []byte(doc.Content)
	return nil
}

func (s *featureState) theBankIsLoaded() error {
	loaded, err := bank.Parse(s.document)
	s.loadErr = err
	if err != nil {
		return nil
	}
	s.sess = session.New(loaded, session.Options{})
	return nil
}

func (s *featureState) loadingFailsMentioning(fragment string) error {
	if s.loadErr == nil {
		return fmt.Errorf("expected load failure")
	}
	if !strings.Contains(s.loadErr.Error(), fragment) {
		return fmt.Errorf("expected error mentioning %q, got %q", fragment, s.loadErr)
	}
	return nil
}

func (s *featureState) theBankLoadsWith(count int) error {
	if s.loadErr != nil {
		return fmt.Errorf("unexpected load failure: %w", s.loadErr)
	}
	if s.sess.Len() != count {
		return fmt.Errorf("expected %d questions, got %d", count, s.sess.Len())
	}
	return nil
}

func (s *featureState) requireSession() error {
	if s.sess == nil {
		return fmt.Errorf("no session loaded")
	}
	return nil
}

func (s *featureState) operatorSelectsOption(number int) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	s.sess.Select(s.sess.Position(), number-1)
	return nil
}

func (s *featureState) operatorSubmits() error {
	if err := s.requireSession(); err != nil {
		return err
	}
	s.sess.Submit(s.sess.Position())
	return nil
}

func (s *featureState) operatorJudges(outcome string) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	s.sess.Judge(s.sess.Position(), outcome == "correct")
	return nil
}

func (s *featureState) operatorAdvances() error {
	if err := s.requireSession(); err != nil {
		return err
	}
	s.sess.Advance()
	return nil
}

func (s *featureState) operatorRetreats() error {
	if err := s.requireSession(); err != nil {
		return err
	}
	s.sess.Retreat()
	return nil
}

func (s *featureState) operatorJumps(number int) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	s.sess.Jump(number - 1)
	return nil
}

func (s *featureState) operatorRestarts() error {
	if err := s.requireSession(); err != nil {
		return err
	}
	s.sess.Restart()
	return nil
}

func (s *featureState) currentGraded(outcome string) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	record := s.sess.Record(s.sess.Position())
	want := session.VerdictWrong
	if outcome == "correct" {
		want = session.VerdictCorrect
	}
	if !record.Submitted || record.Verdict != want {
		return fmt.Errorf("expected %s verdict, got %+v", outcome, record)
	}
	return nil
}

func (s *featureState) currentRevealedUnjudged() error {
	if err := s.requireSession(); err != nil {
		return err
	}
	record := s.sess.Record(s.sess.Position())
	if !record.Submitted || record.Verdict != session.VerdictUnknown {
		return fmt.Errorf("expected revealed but unjudged record, got %+v", record)
	}
	return nil
}

func (s *featureState) questionIsFresh(number int) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	record := s.sess.Record(number - 1)
	if record.Submitted || record.HasSelection() {
		return fmt.Errorf("expected fresh record at question %d, got %+v", number, record)
	}
	return nil
}

func (s *featureState) questionStillCorrect(number int) error {
	if err := s.requireSession(); err != nil {
		return err
	}
	record := s.sess.Record(number - 1)
	if !record.Submitted || record.Verdict != session.VerdictCorrect {
		return fmt.Errorf("expected preserved correct record at question %d, got %+v", number, record)
	}
	return nil
}

func (s *featureState) sessionComplete() error {
	if err := s.requireSession(); err != nil {
		return err
	}
	if !s.sess.Completed() {
		return fmt.Errorf("expected completed session")
	}
	return nil
}

func (s *featureState) sessionNotComplete() error {
	if err := s.requireSession(); err != nil {
		return err
	}
	if s.sess.Completed() {
		return fmt.Errorf("expected session in progress")
	}
	return nil
}
