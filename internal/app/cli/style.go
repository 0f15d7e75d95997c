package cli

import (
	"github.com/charmbracelet/lipgloss"

	"termface/internal/config"
)

var (
	sectionHeader   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575")).MarginTop(1).MarginBottom(1)
	bodyMedium      = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	commandName     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	exampleCode     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA726"))
	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#04B575"))
	appVersionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#BDBDBD"))
	titleWrapper    = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF5350"))
)

// RenderTitle renders the app title block with name, version, and description
func RenderTitle() string {
	title := titleWrapper.Render(
		appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version),
	)
	description := bodyMedium.Render(config.AppDescription)

	return lipgloss.JoinVertical(lipgloss.Left, title, description)
}

// RenderUsage renders the command overview shown by help
func RenderUsage() string {
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+commandName.Render("termface run")+"                    Open the face in a window"),
		bodyMedium.Render("  "+commandName.Render("termface run --headless")+"         Run without a window"),
		bodyMedium.Render("  "+commandName.Render("termface render")+"                 Render one frame to a PNG"),
		bodyMedium.Render("  "+commandName.Render("termface preview")+"                Mirror the overlay in the terminal"),
		bodyMedium.Render("  "+commandName.Render("termface init")+"                   Generate termface.yaml"),
		bodyMedium.Render("  "+commandName.Render("termface version")+"                Show version"),
	)

	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		bodyMedium.Render("  "+exampleCode.Render("termface run --headless --ticks 5 --snapshots out")),
		bodyMedium.Render("  "+exampleCode.Render("termface render --at 2024-03-14T09:41:07Z --size 400x400")),
		bodyMedium.Render("  "+exampleCode.Render("termface preview --ambient")),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		usage,
		sectionHeader.Render("Examples:"),
		examples,
	) + "\n"
}

// RenderError renders a command failure
func RenderError(err error) string {
	return errorStyle.Render("Error:") + " " + err.Error()
}
