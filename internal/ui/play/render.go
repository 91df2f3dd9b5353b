package play

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/bank"
	"quizdeck/internal/session"
)

// View renders the active surface.
func (m Model) View() string {
	if m.jumping {
		return m.viewJump()
	}
	if m.active == screenPreview {
		return m.viewPreview()
	}
	if m.sess.Completed() {
		return m.viewCompleted()
	}
	return m.viewPlay()
}

func (m Model) viewPreview() string {
	counts := m.sess.Counts()
	lines := []string{
		m.stylize(m.deck.Title, colorTitle),
		m.stylize(m.deck.Subtitle, colorSubtitle),
		"",
		m.stylize(formatBankSummary(m.sess.Len(), counts), colorPlain),
		m.stylize("session "+m.sess.ID(), colorFaint),
		"",
		m.stylize("enter start · q quit", colorHint),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewCompleted() string {
	lines := []string{
		m.stylize("Session complete", colorTitle),
		"",
		m.stylize("Well played. Thanks for taking part!", colorPlain),
		"",
		m.stylize("r restart · q home", colorHint),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewJump() string {
	header := m.stylize("Jump to question", colorTitle)
	hint := m.stylize("enter jump · esc close", colorHint)
	return lipgloss.JoinVertical(lipgloss.Left, header, m.jump.View(), hint)
}

func (m Model) viewPlay() string {
	question := m.sess.Current()
	record := m.sess.Record(m.sess.Position())

	lines := []string{
		m.viewHeader(),
		"",
		m.stylize(kindLabel(question.Kind), kindColor(question.Kind)),
		m.stylize(question.Prompt, colorPrompt),
		"",
	}
	if question.Kind.IsChoice() {
		lines = append(lines, m.viewOptions(question, record)...)
	} else {
		lines = append(lines, m.viewTextPanel(record)...)
	}
	if record.Submitted {
		lines = append(lines, "", m.viewReveal(question, record))
	}
	if banner := m.viewFeedback(record); banner != "" {
		lines = append(lines, "", banner)
	}
	lines = append(lines, "", m.stylize(m.footerHint(question, record), colorHint))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewHeader() string {
	left := m.deck.Title + " · " + m.deck.Subtitle
	right := "Question " + formatPosition(m.sess.Position()) + " / " + formatCount(m.sess.Len())
	return m.stylize(left, colorSubtitle) + "   " + m.stylize(right, colorTitle)
}

// viewOptions renders the lettered option list. Before submission the
// cursor and selection are highlighted; afterwards each option shows its
// grading outcome.
func (m Model) viewOptions(question bank.Question, record session.Record) []string {
	lines := make([]string, 0, len(question.Options))
	for idx, option := range question.Options {
		marker := "  "
		if !record.Submitted && idx == m.cursor {
			marker = "> "
		}
		line := marker + optionLetter(idx) + ". " + option
		lines = append(lines, m.stylizeOption(line, question, record, idx))
	}
	return lines
}

func (m Model) stylizeOption(line string, question bank.Question, record session.Record, idx int) string {
	selected := record.IsSelected(idx)
	if !record.Submitted {
		if selected {
			return m.stylize(line+"  •", colorSelected)
		}
		return m.stylize(line, colorPlain)
	}
	correct := isCanonicalIndex(question, idx)
	switch {
	case selected && correct:
		return m.stylize(line+"  ✓", colorCorrect)
	case selected:
		return m.stylize(line+"  ✗", colorWrong)
	case correct:
		return m.stylize(line, colorMissed)
	default:
		return m.stylize(line, colorFaint)
	}
}

func (m Model) viewTextPanel(record session.Record) []string {
	if record.Submitted {
		return nil
	}
	return []string{
		m.stylize("Contestant answers aloud; press enter to reveal the reference answer.", colorFaint),
	}
}

func (m Model) viewReveal(question bank.Question, record session.Record) string {
	lines := []string{m.stylize("Answer: "+formatCanonicalAnswer(question), colorReveal)}
	if content := formatCanonicalContent(question); content != "" {
		lines = append(lines, m.stylize(content, colorPlain))
	}
	if question.Explanation != "" {
		lines = append(lines, m.stylize("Why: "+question.Explanation, colorFaint))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewFeedback(record session.Record) string {
	if !m.sess.Feedback().Visible {
		return ""
	}
	switch record.Verdict {
	case session.VerdictCorrect:
		return m.stylize("✓ Correct!", colorCorrect)
	case session.VerdictWrong:
		return m.stylize("✗ Wrong!", colorWrong)
	default:
		return ""
	}
}

func (m Model) footerHint(question bank.Question, record session.Record) string {
	switch {
	case !record.Submitted && question.Kind.IsChoice():
		return "↑/↓ move · space select · enter submit · ←/→ navigate · g jump · q home"
	case !record.Submitted:
		return "enter reveal · ←/→ navigate · g jump · q home"
	case question.Kind == bank.Text && record.Verdict == session.VerdictUnknown:
		return "c correct · w wrong · ←/→ navigate · g jump · q home"
	default:
		return "←/→ navigate · g jump · r restart · q home"
	}
}
