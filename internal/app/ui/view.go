package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if !m.state.drawn {
		return "Waiting for first frame…"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		FaceStyle.Render(m.renderFace()),
		m.renderStatus(),
		m.renderError(),
		HelpStyle.Render(m.ui.help.View(m.ui.keys)),
	)
}

func (m Model) renderFace() string {
	if !m.state.visible {
		return AmbientStyle.Render("display off")
	}

	text := ConsoleStyle
	if m.state.ambient {
		text = AmbientStyle
	}

	var b strings.Builder

	for i, line := range m.state.lines {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(text.Render(line))
	}

	b.WriteString("\n")

	rows := BinaryStyle
	if m.state.ambient {
		rows = rows.Foreground(FgAmbient)
	}

	for _, row := range m.state.rows {
		b.WriteString("\n")
		b.WriteString(rows.Render(row))
	}

	return b.String()
}

func (m Model) renderStatus() string {
	mode := "interactive"
	if m.state.ambient {
		mode = "ambient"
	}

	status := fmt.Sprintf("%s • %s • frames %d • %s", m.state.phase, mode, m.state.frames, m.state.took)
	if m.state.zone != "" {
		status += " • " + m.state.zone
	}

	return StatusStyle.Render(status)
}

func (m Model) renderError() string {
	if m.state.lastErr == nil {
		return ""
	}

	return ErrorStyle.Render(m.state.lastErr.Error())
}
