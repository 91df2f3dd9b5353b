package play

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/bank"
	"quizdeck/internal/session"
)

// openJump builds the jump-to-question overlay positioned on the current
// question. Jumping preserves every answer record, including the one at the
// position being left.
func (m Model) openJump() Model {
	t := table.New(
		table.WithColumns(jumpColumns(m.width)),
		table.WithRows(jumpRows(m.sess)),
		table.WithFocused(true),
	)
	t.SetStyles(jumpStyles(m.noColor))
	if m.width > 0 {
		t.SetWidth(m.width)
	}
	t.SetHeight(jumpHeight(m.height))
	t.SetCursor(m.sess.Position())
	m.jump = t
	m.jumping = true
	return m
}

func jumpColumns(width int) []table.Column {
	prompt := width - 24
	if prompt < 30 {
		prompt = 30
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Status", Width: 12},
		{Title: "Question", Width: prompt},
	}
}

func jumpRows(sess *session.Session) []table.Row {
	rows := make([]table.Row, 0, sess.Len())
	for pos := 0; pos < sess.Len(); pos++ {
		question, _ := sess.Question(pos)
		record := sess.Record(pos)
		rows = append(rows, table.Row{
			formatPosition(pos),
			recordStatus(question, record),
			truncatePrompt(question.Prompt),
		})
	}
	return rows
}

// recordStatus labels a question's progress for the jump index.
func recordStatus(question bank.Question, record session.Record) string {
	switch {
	case record.Verdict == session.VerdictCorrect:
		return "correct"
	case record.Verdict == session.VerdictWrong:
		return "wrong"
	case record.Submitted && question.Kind == bank.Text:
		return "revealed"
	case record.Submitted:
		return "submitted"
	case record.HasSelection():
		return "in progress"
	default:
		return "-"
	}
}

func jumpHeight(height int) int {
	h := height - 6
	if h < 3 {
		h = 3
	}
	return h
}

func jumpStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("94"))
	return styles
}
