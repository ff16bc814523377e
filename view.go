package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gommander/internal/pane"
)

var (
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder())

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Reverse(true)

	selectedFocusedStyle = lipgloss.NewStyle().
				Reverse(true).
				Bold(true)

	legendStyle = lipgloss.NewStyle().
			Faint(true)

	statusStyle = lipgloss.NewStyle().
			Bold(true)

	tooSmallStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.tooSmall() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			tooSmallStyle.Render("Window too small! Resize to continue."))
	}

	paneWidth := m.width / 2
	paneHeight := m.height - barHeight

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPane(m.left, m.focus == focusLeft, paneWidth, paneHeight),
		m.renderPane(m.right, m.focus == focusRight, m.width-paneWidth, paneHeight),
	)
	return lipgloss.JoinVertical(lipgloss.Left, panes, m.renderBar())
}

func (m model) renderPane(p *pane.Pane, focused bool, width, height int) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}

	p.ReconcileScroll(m.visibleRows())

	title := "[ " + p.Dir + " ]"
	if p.Truncated {
		title += " (truncated)"
	}
	lines := []string{titleStyle.Render(truncate(title, inner))}

	end := p.ScrollOffset + m.visibleRows()
	if end > len(p.Entries) {
		end = len(p.Entries)
	}
	for i := p.ScrollOffset; i < end; i++ {
		entry := p.Entries[i]
		name := entry.Name
		if entry.Kind == pane.KindFolder && name != ".." {
			name = "/" + name
		}
		line := truncate(entry.Kind.Tag()+" "+name, inner)
		if i == p.Selected {
			if focused {
				line = selectedFocusedStyle.Render(line)
			} else {
				line = selectedStyle.Render(line)
			}
		}
		lines = append(lines, line)
	}

	return paneStyle.
		Width(inner).
		Height(height - 2).
		Render(strings.Join(lines, "\n"))
}

func (m model) renderBar() string {
	var legend []string
	for _, b := range m.keys.legend() {
		h := b.Help()
		legend = append(legend, h.Key+":"+h.Desc)
	}

	var input string
	if m.mode == modeRename {
		input = "Rename to: " + m.renameInput.View()
	} else {
		input = "> " + m.cmdInput.View()
	}

	return strings.Join([]string{
		legendStyle.Render(truncate(strings.Join(legend, "  "), m.width)),
		input,
		statusStyle.Render(truncate(m.statusMsg, m.width)),
	}, "\n")
}

// truncate clips s to at most width cells; styling is applied afterwards
// so escape sequences never get cut.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if len(r) > width {
		r = r[:width]
	}
	return string(r)
}
