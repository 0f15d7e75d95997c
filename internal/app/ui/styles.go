package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for the preview
const (
	FgConsole = lipgloss.Color("10") // Green - console text
	FgAmbient = lipgloss.Color("8")  // Gray - ambient text
	FgMuted   = lipgloss.Color("7")  // Light gray - status line
	FgError   = lipgloss.Color("9")  // Red - last draw error
	BgFace    = lipgloss.Color("0")  // Black - face background
)

// Layout constants
const (
	FaceWidth   = 36
	FacePadding = 1
)

var (
	// FaceStyle frames the mirrored watch face
	FaceStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgConsole).
			Background(BgFace).
			Padding(FacePadding, 2).
			Width(FaceWidth)

	// ConsoleStyle for the console overlay lines
	ConsoleStyle = lipgloss.NewStyle().
			Foreground(FgConsole).
			Background(BgFace)

	// AmbientStyle replaces ConsoleStyle while the face is in ambient mode
	AmbientStyle = lipgloss.NewStyle().
			Foreground(FgAmbient).
			Background(BgFace)

	// BinaryStyle for the binary clock rows
	BinaryStyle = ConsoleStyle.
			Bold(true).
			Width(FaceWidth).
			Align(lipgloss.Center)

	// StatusStyle for the status line
	StatusStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			Padding(1, 1, 0, 1)

	// ErrorStyle for draw failures
	ErrorStyle = lipgloss.NewStyle().
			Foreground(FgError).
			Padding(0, 1)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgAmbient).
			Padding(1, 1, 0, 1)
)
