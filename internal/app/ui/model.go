package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"termface/internal/app/bus"
	"termface/internal/config/logger"
)

//go:generate mockgen -source=model.go -destination=model_mock.go -package=ui

// Controls is the part of the host the preview drives
type Controls interface {
	SetAmbient(ambient bool)
	SetVisible(visible bool)
	Ambient() bool
	Visible() bool
}

// Model is the bubbletea model mirroring the face overlay
type Model struct {
	ctx      context.Context
	controls Controls
	msgChan  <-chan bus.Message

	state struct {
		phase   bus.Phase
		lines   [4]string
		rows    [3]string
		drawn   bool
		ambient bool
		visible bool
		zone    string
		frames  int
		took    time.Duration
		lastErr error
	}

	ui struct {
		width  int
		height int
		keys   KeyMap
		help   help.Model
	}

	log logger.Logger
}

// NewModel creates a preview model subscribed to the bus
func NewModel(ctx context.Context, b bus.Bus, controls Controls, log logger.Logger) Model {
	log = log.WithComponent(logger.ComponentUI)
	msgChan := b.Subscribe(ctx)

	log.Debug().Msg("Created model and subscribed to events")

	m := Model{
		ctx:      ctx,
		controls: controls,
		msgChan:  msgChan,
		log:      log,
	}

	m.state.phase = bus.PhaseIdle
	m.state.ambient = controls.Ambient()
	m.state.visible = controls.Visible()

	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return waitForMsgCmd(m.msgChan)
}
