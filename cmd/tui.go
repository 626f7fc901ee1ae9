package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/vidcat/internal/ui"
	"github.com/urfave/cli/v3"
)

// Tui launches the interactive catalog browser.
func (r *Runner) Tui(ctx context.Context, cmd *cli.Command) error {
	model := ui.NewModel(ctx, r.engine, r.logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
