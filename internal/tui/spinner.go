package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/modwarden/modwarden/internal/style"
	"github.com/modwarden/modwarden/util/common/progress"
	"github.com/rs/zerolog/log"
)

// ─── Messages ────────────────────────────────────────────────────────────────

// spinnerStopMsg ends the current step and clears the spinner line.
type spinnerStopMsg struct{}

// ─── Model ───────────────────────────────────────────────────────────────────

// SpinnerModel shows a spinner next to a title until it is stopped.
type SpinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

// NewSpinnerModel creates a spinner for one step.
func NewSpinnerModel(title string) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.SpinnerColor)

	return SpinnerModel{
		spinner: s,
		title:   title,
	}
}

func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m SpinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "..."
}

// ─── Reporter ────────────────────────────────────────────────────────────────

// SpinnerReporter animates a spinner from Step until the next notice, while
// the step's registry calls run. Notices are printed by the wrapped reporter
// once the spinner line is cleared.
//
// The program reads no input and installs no signal handler, so an interrupt
// still reaches the command's own handler.
type SpinnerReporter struct {
	progress.Reporter

	out     io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewSpinnerReporter wraps notices, drawing the spinner on out.
func NewSpinnerReporter(notices progress.Reporter, out io.Writer) *SpinnerReporter {
	return &SpinnerReporter{Reporter: notices, out: out}
}

func (r *SpinnerReporter) Step(message string) {
	r.stop()

	p := tea.NewProgram(NewSpinnerModel(message),
		tea.WithOutput(r.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, err := p.Run(); err != nil {
			log.Debug().Err(err).Msg("Spinner stopped")
		}
	}()
	r.program, r.done = p, done
}

func (r *SpinnerReporter) Warning(message string) {
	r.stop()
	r.Reporter.Warning(message)
}

func (r *SpinnerReporter) Error(message string) {
	r.stop()
	r.Reporter.Error(message)
}

func (r *SpinnerReporter) Success(message string) {
	r.stop()
	r.Reporter.Success(message)
}

func (r *SpinnerReporter) End() {
	r.stop()
	r.Reporter.End()
}

// stop blocks until the running spinner, if any, has cleared its line.
func (r *SpinnerReporter) stop() {
	if r.program == nil {
		return
	}
	r.program.Send(spinnerStopMsg{})
	<-r.done
	r.program, r.done = nil, nil
}
