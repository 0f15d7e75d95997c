package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"

	"termface/internal/app/bus"
	"termface/internal/app/host"
	"termface/internal/config/logger"
)

// UI creates a Bubble Tea program for the terminal preview
type UI func(ctx context.Context) *tea.Program

// Module provides the UI factory
var Module = fx.Options(
	fx.Provide(NewUI),
)

// Params contains dependencies for creating the UI factory
type Params struct {
	fx.In

	Bus    bus.Bus
	Engine host.Engine
	Logger logger.Logger
}

// NewUI creates a factory function for constructing Bubble Tea programs
func NewUI(p Params) UI {
	return func(ctx context.Context) *tea.Program {
		model := NewModel(ctx, p.Bus, p.Engine, p.Logger)

		prog := tea.NewProgram(
			model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
		)

		p.Logger.Debug().Msg("TUI: Program created via factory")

		return prog
	}
}
