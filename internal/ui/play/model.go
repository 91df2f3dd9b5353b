// Package play renders a quiz session in the terminal using Bubble Tea.
// The model holds no answer state of its own: it reads the session's query
// surface and drives its intent surface, so every transition stays inside
// the session engine.
package play

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"quizdeck/internal/config"
	"quizdeck/internal/session"
)

// screen selects which surface the model is showing.
type screen int

const (
	screenPreview screen = iota
	screenPlay
)

// Model drives the terminal UI for one quiz session.
type Model struct {
	sess    *session.Session
	deck    config.Deck
	noColor bool

	active  screen
	cursor  int
	jumping bool
	jump    table.Model
	width   int
	height  int
}

// Options configures the play UI model.
type Options struct {
	NoColor bool
}

// New constructs a UI model over a started session.
func New(sess *session.Session, deck config.Deck, opts Options) Model {
	return Model{
		sess:    sess,
		deck:    deck,
		noColor: opts.NoColor,
		active:  screenPreview,
	}
}

// Init reports no initial work; the model waits for key input.
func (m Model) Init() tea.Cmd {
	return nil
}

// feedbackExpiredMsg asks the session to hide the verdict banner. It
// carries the banner showing it was scheduled for, so a stale timer cannot
// hide feedback for a later question.
type feedbackExpiredMsg struct {
	seq int
}

// expireFeedback schedules dismissal of the current banner showing.
func expireFeedback(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return feedbackExpiredMsg{seq: seq}
	})
}

// feedbackCmd schedules an expiry when an intent produced a new banner.
func (m Model) feedbackCmd(before session.Feedback) tea.Cmd {
	after := m.sess.Feedback()
	if after.Visible && after.Seq != before.Seq {
		return expireFeedback(m.sess.FeedbackDelay(), after.Seq)
	}
	return nil
}
