package ui

import (
	"fmt"
	"rowstore/pkg/database"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen front end and blocks until the user quits.
// A non-nil error is either a terminal failure or an internal engine error.
func Run(db *database.Database) error {
	p := tea.NewProgram(NewModel(db), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running program: %w", err)
	}

	if m, ok := final.(Model); ok && m.Fatal() != nil {
		return m.Fatal()
	}
	return nil
}
