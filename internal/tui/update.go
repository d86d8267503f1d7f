package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditingKey(msg)
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case InputLoadedMsg:
		m.loading = false
		m.wizard.Load(msg.Input)
		m.focus = 0
		m.status = fmt.Sprintf("Loaded %s", msg.Path)
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ShareCompleteMsg:
		if msg.Err != nil {
			m.status = "Clipboard unavailable: " + msg.Text
		} else {
			m.status = "Copied: " + msg.Text
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input outside of text editing
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key dismisses an error
	if m.err != nil {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.wizard.Reset()
		m.focus = 0
		m.showCompare = false
		m.status = "Started over with default inputs"
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m.moveStage(1), nil

	case key.Matches(msg, m.keys.Prev):
		return m.moveStage(-1), nil
	}

	if m.wizard.IsComplete() {
		return m.handleResultsKey(msg)
	}
	return m.handleFieldKey(msg)
}

// handleFieldKey edits the focused field of an input stage
func (m Model) handleFieldKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.fields()
	if len(fields) == 0 {
		return m, nil
	}
	m.focus = min(m.focus, len(fields)-1)
	f := fields[m.focus]

	switch {
	case key.Matches(msg, m.keys.Up):
		m.focus = (m.focus - 1 + len(fields)) % len(fields)

	case key.Matches(msg, m.keys.Down):
		m.focus = (m.focus + 1) % len(fields)

	case key.Matches(msg, m.keys.Left):
		f.adjust(m.wizard, -1)

	case key.Matches(msg, m.keys.Right):
		f.adjust(m.wizard, 1)

	case key.Matches(msg, m.keys.Toggle):
		f.adjust(m.wizard, 1)

	case key.Matches(msg, m.keys.Edit):
		if !f.editable() {
			// enter on a toggle or choice advances the wizard
			return m.moveStage(1), nil
		}
		m.editing = true
		m.editor.SetValue(f.text(m.wizard.Input()))
		m.editor.CursorEnd()
		cmd := m.editor.Focus()
		return m, cmd
	}

	m.status = ""
	return m, nil
}

// handleEditingKey routes keys to the text input until it is applied or cancelled
func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if fields := m.fields(); m.focus < len(fields) {
			fields[m.focus].set(m.wizard, m.editor.Value())
		}
		m.editing = false
		m.editor.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.editor.Blur()
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// handleResultsKey handles keys on the results stage
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Share):
		return m, shareCmd(m.shareText(), m.copyToClipboard)

	case key.Matches(msg, m.keys.Compare):
		m.showCompare = !m.showCompare
	}
	return m, nil
}

// moveStage advances (dir > 0) or retreats the wizard and resets focus
func (m Model) moveStage(dir int) Model {
	before := m.wizard.CurrentStage()
	if dir > 0 {
		m.wizard.Advance()
	} else {
		m.wizard.Retreat()
	}
	if m.wizard.CurrentStage() != before {
		m.focus = 0
		m.showCompare = false
		m.status = ""
	}
	return m
}
