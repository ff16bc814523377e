package main

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gommander/internal/logger"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width == m.width && msg.Height == m.height {
			return m, nil
		}
		m.width = msg.Width
		m.height = msg.Height
		m.cmdInput.Width = msg.Width - 4
		m.renameInput.Width = msg.Width - 14
		// Layout is derived from the stored size at render time; a resize
		// is also a cheap moment to pick up filesystem changes.
		m.left.Refresh()
		m.right.Refresh()
		return m, nil

	case statusTickMsg:
		if !time.Now().Before(m.statusExpiry) {
			m.statusMsg = ""
		}
		return m, nil

	case editorFinishedMsg:
		if msg.err != nil {
			logger.Warn("editor: %v", msg.err)
		}
		m.focusedPane().Refresh()
		return m, nil

	case shellFinishedMsg:
		if msg.err != nil {
			logger.Warn("shell: %v", msg.err)
		}
		m.syncCwd()
		return m, nil

	case tea.KeyMsg:
		if m.tooSmall() {
			// Only a way out is accepted until the terminal grows back.
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		switch m.mode {
		case modeRename:
			return m.updateRename(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

func (m model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.FocusSwitch):
		if m.focus == focusLeft {
			m.focus = focusRight
		} else {
			m.focus = focusLeft
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.focusedPane().MoveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.focusedPane().MoveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.cmdInput.Value() != "" {
			return m, m.runCommand()
		}
		return m, m.openSelected()

	case key.Matches(msg, m.keys.Copy):
		return m, m.copySelected()

	case key.Matches(msg, m.keys.Paste):
		return m, m.paste()

	case key.Matches(msg, m.keys.Rename):
		return m, m.beginRename()

	case key.Matches(msg, m.keys.YankPath):
		return m, m.yankPath()

	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteSelected()
	}

	var cmd tea.Cmd
	m.cmdInput, cmd = m.cmdInput.Update(msg)
	return m, cmd
}

func (m model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.commitRename()
		m.exitRename()
		return m, nil

	case key.Matches(msg, m.keys.Rename):
		// F3 cancels the rename it started.
		m.exitRename()
		return m, nil
	}

	// Everything else, q included, edits the rename buffer.
	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}
