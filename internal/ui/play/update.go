package play

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update consumes key input, window resizes, and feedback expirations.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		if m.jumping {
			m.jump.SetWidth(typed.Width)
			m.jump.SetHeight(jumpHeight(typed.Height))
		}
		return m, nil
	case feedbackExpiredMsg:
		m.sess.ExpireFeedback(typed.seq)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.jumping {
		return m.handleJumpKey(msg)
	}
	if m.active == screenPreview {
		return m.handlePreviewKey(msg)
	}
	if m.sess.Completed() {
		return m.handleCompletedKey(msg)
	}
	return m.handlePlayKey(msg)
}

func (m Model) handlePreviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		m.active = screenPlay
		m.cursor = 0
		return m, nil
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleCompletedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.sess.Restart()
		m.cursor = 0
		return m, nil
	case "q", "esc":
		return m.exitToPreview(), nil
	}
	return m, nil
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pos := m.sess.Position()
	before := m.sess.Feedback()
	switch msg.String() {
	case "q", "esc":
		return m.exitToPreview(), nil
	case "left", "h", "p":
		if m.sess.Retreat() {
			return m.exitToPreview(), nil
		}
		m.cursor = 0
		return m, nil
	case "right", "l", "n":
		m.sess.Advance()
		m.cursor = 0
		return m, nil
	case "up", "k":
		m.cursor = m.clampCursor(m.cursor - 1)
		return m, nil
	case "down", "j":
		m.cursor = m.clampCursor(m.cursor + 1)
		return m, nil
	case " ":
		m.sess.Select(pos, m.cursor)
		return m, nil
	case "enter":
		m.sess.Submit(pos)
		return m, m.feedbackCmd(before)
	case "c":
		m.sess.Judge(pos, true)
		return m, m.feedbackCmd(before)
	case "w":
		m.sess.Judge(pos, false)
		return m, m.feedbackCmd(before)
	case "g":
		return m.openJump(), nil
	case "r":
		m.sess.Restart()
		m.cursor = 0
		return m, nil
	}
	if idx, ok := digitKey(msg.String()); ok {
		m.sess.Select(pos, idx)
		m.cursor = m.clampCursor(idx)
	}
	return m, nil
}

func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "g", "q":
		m.jumping = false
		return m, nil
	case "enter":
		m.sess.Jump(m.jump.Cursor())
		m.jumping = false
		m.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// exitToPreview tears the session down and returns to the setup surface.
func (m Model) exitToPreview() Model {
	m.sess.Restart()
	m.active = screenPreview
	m.cursor = 0
	return m
}

func (m Model) clampCursor(cursor int) int {
	options := len(m.sess.Current().Options)
	if options == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= options {
		return options - 1
	}
	return cursor
}

// digitKey maps keys 1-9 to option indices 0-8.
func digitKey(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}
