package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/modwarden/modwarden/internal/style"
	"golang.org/x/term"
)

// StyledReporter implements Reporter with themed output.
// It uses lipgloss styles for colored output.
type StyledReporter struct {
	out io.Writer
}

// NewStyledReporter creates a reporter with lipgloss-styled output.
func NewStyledReporter() *StyledReporter {
	return &StyledReporter{out: os.Stdout}
}

// NewAutoReporter returns a StyledReporter when stdout is a TTY and colours
// are enabled, otherwise falls back to the plain ConsoleReporter.
func NewAutoReporter() Reporter {
	if term.IsTerminal(int(os.Stdout.Fd())) && style.Enabled {
		return NewStyledReporter()
	}
	return NewConsoleReporter()
}

var (
	startStyle   = lipgloss.NewStyle().Bold(true).Foreground(style.Emerald)
	stepStyle    = lipgloss.NewStyle().Foreground(style.Dim).PaddingLeft(2)
	warningStyle = lipgloss.NewStyle().Foreground(style.Yellow).PaddingLeft(2)
	errorStyle   = lipgloss.NewStyle().Foreground(style.Red).Bold(true).PaddingLeft(2)
	successStyle = lipgloss.NewStyle().Foreground(style.Green).Bold(true).PaddingLeft(2)
)

func (r *StyledReporter) Start(message string) {
	fmt.Fprintln(r.out, startStyle.Render("⚡ "+message+"..."))
}

func (r *StyledReporter) Step(message string) {
	fmt.Fprintln(r.out, stepStyle.Render("→ "+message+"..."))
}

func (r *StyledReporter) Warning(message string) {
	fmt.Fprintln(r.out, warningStyle.Render("! "+message))
}

func (r *StyledReporter) Error(message string) {
	fmt.Fprintln(r.out, errorStyle.Render("✗ "+message))
}

func (r *StyledReporter) Success(message string) {
	fmt.Fprintln(r.out, successStyle.Render("✓ "+message))
}

func (r *StyledReporter) End() {}
