package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/syre-ai/neural-foundry/internal/engine"
)

// RunBoard opens the interactive mission board.
func RunBoard(ctx context.Context, runner *engine.Runner, out io.Writer) error {
	m := newBoardModel(ctx, runner)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
