package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termface/internal/app/bus"
)

type msgMsg bus.Message

type channelClosedMsg struct{}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width

		return m, nil
	case msgMsg:
		return m.handleBusMessage(bus.Message(msg))
	case channelClosedMsg:
		m.log.Debug().Msg("Bus channel closed")
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.ui.keys.Quit), key.Matches(msg, m.ui.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.ui.keys.ToggleAmbient):
		m.state.ambient = !m.controls.Ambient()
		m.controls.SetAmbient(m.state.ambient)
	case key.Matches(msg, m.ui.keys.ToggleVisibility):
		m.state.visible = !m.controls.Visible()
		m.controls.SetVisible(m.state.visible)
	}

	return m, nil
}

func (m Model) handleBusMessage(msg bus.Message) (tea.Model, tea.Cmd) {
	next := waitForMsgCmd(m.msgChan)

	switch msg.Type {
	case bus.EventPhaseChanged:
		if data, ok := msg.Data.(bus.PhaseChanged); ok {
			m.state.phase = data.Phase
			if data.Phase == bus.PhaseDestroyed {
				return m, tea.Quit
			}
		}
	case bus.EventFrameDrawn:
		if data, ok := msg.Data.(bus.FrameDrawn); ok {
			m.state.lines = data.Lines
			m.state.rows = data.Rows
			m.state.took = data.Duration
			m.state.drawn = true
			m.state.frames++
		}
	case bus.EventDrawFailed:
		if data, ok := msg.Data.(bus.DrawFailed); ok {
			m.state.lastErr = data.Error
		}
	case bus.EventAmbientChanged:
		if data, ok := msg.Data.(bus.AmbientChanged); ok {
			m.state.ambient = data.Ambient
		}
	case bus.EventVisibilityChanged:
		if data, ok := msg.Data.(bus.VisibilityChanged); ok {
			m.state.visible = data.Visible
		}
	case bus.EventTimeZoneChanged:
		if data, ok := msg.Data.(bus.TimeZoneChanged); ok {
			m.state.zone = data.Zone
		}
	}

	return m, next
}

func waitForMsgCmd(msgChan <-chan bus.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-msgChan
		if !ok {
			return channelClosedMsg{}
		}

		return msgMsg(msg)
	}
}
