package main

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gommander/internal/logger"
	"gommander/internal/pane"
)

// Terminal dimension constants
const (
	minTerminalWidth  = 60
	minTerminalHeight = 10
	barHeight         = 3 // legend + input line + status line
)

// Application behavior constants
const (
	inputLimit  = 256         // Maximum bytes in the command and rename buffers
	statusDwell = time.Second // How long transient status messages linger
)

type mode int

const (
	modeNormal mode = iota
	modeRename
)

type focus int

const (
	focusLeft focus = iota
	focusRight
)

// statusTickMsg asks the controller to clear an expired status message.
type statusTickMsg struct{}

// editorFinishedMsg is sent when the external editor returns and the
// terminal has been reacquired.
type editorFinishedMsg struct{ err error }

// shellFinishedMsg is sent when an ad-hoc shell command returns.
type shellFinishedMsg struct{ err error }

type model struct {
	mode  mode
	focus focus

	left  *pane.Pane
	right *pane.Pane

	// clipboard holds the absolute source path for paste; empty means no
	// copy has happened yet. It is only ever overwritten, never cleared.
	clipboard string

	cmdInput    textinput.Model
	renameInput textinput.Model

	width  int
	height int

	statusMsg    string
	statusExpiry time.Time

	keys keyMap
}

func initialModel() model {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "/"
	}

	cmd := textinput.New()
	cmd.CharLimit = inputLimit
	cmd.Prompt = ""
	cmd.Focus()

	ren := textinput.New()
	ren.CharLimit = inputLimit
	ren.Prompt = ""

	m := model{
		mode:        modeNormal,
		focus:       focusLeft,
		left:        pane.New(cwd),
		right:       pane.New("/"),
		cmdInput:    cmd,
		renameInput: ren,
		keys:        defaultKeyMap(),
	}

	if err := m.left.Refresh(); err != nil {
		logger.Warn("read %s: %v", m.left.Dir, err)
	}
	if err := m.right.Refresh(); err != nil {
		logger.Warn("read %s: %v", m.right.Dir, err)
	}
	return m
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("gommander"),
		textinput.Blink,
	)
}

func (m *model) focusedPane() *pane.Pane {
	if m.focus == focusRight {
		return m.right
	}
	return m.left
}

func (m model) tooSmall() bool {
	return m.width < minTerminalWidth || m.height < minTerminalHeight
}

// visibleRows is how many listing rows fit in a pane body: pane height
// minus the border rows and the title row.
func (m model) visibleRows() int {
	rows := m.height - barHeight - 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

// setStatus installs a transient status message and schedules its clear.
func (m *model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(statusDwell)
	return tea.Tick(statusDwell, func(time.Time) tea.Msg {
		return statusTickMsg{}
	})
}
