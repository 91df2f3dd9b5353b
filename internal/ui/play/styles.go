package play

import (
	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/bank"
)

const (
	colorTitle    = lipgloss.Color("220")
	colorSubtitle = lipgloss.Color("178")
	colorPrompt   = lipgloss.Color("231")
	colorPlain    = lipgloss.Color("252")
	colorSelected = lipgloss.Color("214")
	colorCorrect  = lipgloss.Color("42")
	colorWrong    = lipgloss.Color("196")
	colorMissed   = lipgloss.Color("108")
	colorFaint    = lipgloss.Color("244")
	colorReveal   = lipgloss.Color("229")
	colorHint     = lipgloss.Color("240")
)

// stylize applies foreground color unless color output is disabled.
func (m Model) stylize(text string, color lipgloss.Color) string {
	if m.noColor || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// kindColor picks the tag color for a question kind.
func kindColor(kind bank.Kind) lipgloss.Color {
	switch kind {
	case bank.Single:
		return lipgloss.Color("39")
	case bank.Multiple:
		return lipgloss.Color("135")
	case bank.Text:
		return lipgloss.Color("208")
	default:
		return colorFaint
	}
}

// isCanonicalIndex reports whether an option index is part of the canonical
// answer of a choice question.
func isCanonicalIndex(question bank.Question, idx int) bool {
	switch question.Kind {
	case bank.Single:
		return question.AnswerIndex == idx
	case bank.Multiple:
		for _, canonical := range question.AnswerSet {
			if canonical == idx {
				return true
			}
		}
	}
	return false
}
