package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gommander/internal/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "gommander: logging disabled: %v\n", err)
	}
	defer logger.Close()

	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program: %v", err)
		fmt.Fprintf(os.Stderr, "gommander: %v\n", err)
		os.Exit(1)
	}
}
