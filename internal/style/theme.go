// Package style defines the visual theme for modwarden.
// Colours and text styles live here so that prompts, tables and progress
// output share one look.
//
// Call Init(colorEnabled) once at startup. After that, use the exported
// styles and helper functions freely.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ─── Colour palette ──────────────────────────────────────────────────────────

var (
	// Brand
	Emerald = lipgloss.Color("#10B981")
	Cyan    = lipgloss.Color("#00B4D8")
	Indigo  = lipgloss.Color("#6366F1")

	// Semantic
	Green  = lipgloss.Color("#22C55E")
	Yellow = lipgloss.Color("#FACC15")
	Red    = lipgloss.Color("#EF4444")

	// Neutral
	White  = lipgloss.Color("#FAFAFA")
	Dim    = lipgloss.Color("#6B7280")
	Subtle = lipgloss.Color("#374151")

	SpinnerColor = Cyan
)

// ─── Text styles ─────────────────────────────────────────────────────────────

var (
	// Title is used for top-level headings.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	Success = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	Warning = lipgloss.NewStyle().
		Foreground(Yellow)

	Error = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	// DimText is used for hints and secondary info.
	DimText = lipgloss.NewStyle().
		Foreground(Dim)

	// Code style for project ids and paths.
	Code = lipgloss.NewStyle().
		Foreground(Indigo)

	Bold = lipgloss.NewStyle().Bold(true)
)

// ─── Helpers ─────────────────────────────────────────────────────────────────

// Enabled tracks whether styles should render ANSI output.
// When false, all styles degrade to plain text.
var Enabled = true

// Init configures the style package. Call once at startup.
func Init(colorEnabled bool) {
	Enabled = colorEnabled
	if !colorEnabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// SuccessIcon returns a themed check mark.
func SuccessIcon() string {
	if Enabled {
		return Success.Render("✓")
	}
	return "OK"
}

// ErrorIcon returns a themed X mark.
func ErrorIcon() string {
	if Enabled {
		return Error.Render("✗")
	}
	return "ERROR"
}

// WarningIcon returns a themed warning indicator.
func WarningIcon() string {
	if Enabled {
		return Warning.Render("!")
	}
	return "WARN"
}

// Hint renders a "next step" hint message.
func Hint(msg string) string {
	return DimText.Render("→ " + msg)
}

// Platform renders a registry name in its brand colour.
func Platform(name string) string {
	if !Enabled {
		return name
	}
	switch name {
	case "Modrinth":
		return lipgloss.NewStyle().Foreground(Green).Render(name)
	case "CurseForge":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#F16436")).Render(name)
	}
	return name
}
