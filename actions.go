package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/skratchdot/open-golang/open"

	"gommander/internal/fileops"
	"gommander/internal/logger"
	"gommander/internal/pane"
)

// openSelected activates the entry under the cursor: folders are entered,
// text files go to the editor, everything else to the system handler.
func (m *model) openSelected() tea.Cmd {
	p := m.focusedPane()
	entry, ok := p.Current()
	if !ok {
		return nil
	}

	if entry.Name == ".." || entry.Kind == pane.KindFolder {
		m.enterDir(p, entry.Name)
		return nil
	}

	path := filepath.Join(p.Dir, entry.Name)
	if entry.Kind == pane.KindText {
		c := exec.Command("nano", path)
		return tea.ExecProcess(c, func(err error) tea.Msg {
			return editorFinishedMsg{err: err}
		})
	}

	// Detached opener; failures in the handler itself never reach us.
	if err := open.Start(path); err != nil {
		logger.Warn("open %s: %v", path, err)
	}
	return nil
}

// enterDir moves the process working directory and points the pane at the
// resolved result, so symlinks and ".." both land on a canonical path.
func (m *model) enterDir(p *pane.Pane, name string) {
	prev := p.Dir
	if err := os.Chdir(filepath.Join(p.Dir, name)); err != nil {
		logger.Warn("chdir %s: %v", name, err)
		return
	}
	cwd, err := os.Getwd()
	if err != nil {
		logger.Error("getwd: %v", err)
		return
	}

	p.Dir = cwd
	if err := p.Refresh(); err != nil {
		logger.Warn("read %s: %v", p.Dir, err)
	}
	// ".." at the root resolves to the same directory; keep the view.
	if cwd != prev {
		p.ResetView()
	}
}

// runCommand hands the terminal to a shell running the typed input, with
// the focused pane's directory as working directory.
func (m *model) runCommand() tea.Cmd {
	p := m.focusedPane()
	input := m.cmdInput.Value()
	m.cmdInput.SetValue("")

	if err := os.Chdir(p.Dir); err != nil {
		logger.Warn("chdir %s: %v", p.Dir, err)
	}
	c := exec.Command("bash", "-c", input)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return shellFinishedMsg{err: err}
	})
}

// syncCwd re-reads the process working directory into the focused pane
// after an external command may have moved it, then refreshes.
func (m *model) syncCwd() {
	p := m.focusedPane()
	if cwd, err := os.Getwd(); err == nil {
		p.Dir = cwd
	}
	if err := p.Refresh(); err != nil {
		logger.Warn("read %s: %v", p.Dir, err)
	}
}

func (m *model) copySelected() tea.Cmd {
	p := m.focusedPane()
	entry, ok := p.Current()
	if !ok || entry.Name == ".." {
		return nil
	}
	m.clipboard = filepath.Join(p.Dir, entry.Name)
	return m.setStatus("Copied " + entry.Name)
}

func (m *model) paste() tea.Cmd {
	if m.clipboard == "" {
		return nil
	}
	p := m.focusedPane()
	target := fileops.ResolveCollision(p.Dir, filepath.Base(m.clipboard))
	if err := fileops.CopyFileOrDir(m.clipboard, filepath.Join(p.Dir, target)); err != nil {
		logger.Error("paste %s: %v", m.clipboard, err)
	}
	if err := p.Refresh(); err != nil {
		logger.Warn("read %s: %v", p.Dir, err)
	}
	return m.setStatus("Pasted " + target)
}

func (m *model) beginRename() tea.Cmd {
	p := m.focusedPane()
	entry, ok := p.Current()
	if !ok || entry.Name == ".." {
		return nil
	}
	m.mode = modeRename
	m.renameInput.SetValue("")
	m.renameInput.Focus()
	m.cmdInput.Blur()
	return textinput.Blink
}

func (m *model) commitRename() {
	p := m.focusedPane()
	entry, ok := p.Current()
	newName := m.renameInput.Value()
	if ok && newName != "" && entry.Name != ".." {
		if err := fileops.Rename(p.Dir, entry.Name, newName); err != nil {
			logger.Error("rename %s -> %s: %v", entry.Name, newName, err)
		}
	}
	if err := p.Refresh(); err != nil {
		logger.Warn("read %s: %v", p.Dir, err)
	}
}

func (m *model) exitRename() {
	m.mode = modeNormal
	m.renameInput.SetValue("")
	m.renameInput.Blur()
	m.cmdInput.Focus()
}

func (m *model) deleteSelected() tea.Cmd {
	p := m.focusedPane()
	entry, ok := p.Current()
	if !ok || entry.Name == ".." {
		return nil
	}
	if err := fileops.Delete(filepath.Join(p.Dir, entry.Name)); err != nil {
		logger.Error("delete %s: %v", entry.Name, err)
	}
	if err := p.Refresh(); err != nil {
		logger.Warn("read %s: %v", p.Dir, err)
	}
	return m.setStatus("Deleted " + entry.Name)
}

// yankPath puts the selected entry's absolute path on the system clipboard.
func (m *model) yankPath() tea.Cmd {
	p := m.focusedPane()
	path, ok := p.SelectedPath()
	if !ok {
		return nil
	}
	if err := clipboard.WriteAll(path); err != nil {
		logger.Warn("clipboard: %v", err)
		return nil
	}
	entry, _ := p.Current()
	return m.setStatus("Yanked " + entry.Name)
}
