package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"missiontracker/internal/engine"
)

// RunBoard opens the full-screen board until the user quits.
func RunBoard(ctx context.Context, svc *engine.Service, catalog CatalogFunc, out io.Writer) error {
	m := newBoardModel(ctx, svc, catalog)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
