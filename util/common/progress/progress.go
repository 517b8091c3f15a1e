// Package progress provides progress reporting functionality
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/modwarden/modwarden/internal/style"
)

// Reporter defines the interface for reporting progress.
// It provides methods to report different stages of an operation
// and its status.
type Reporter interface {
	// Start begins progress reporting with an initial message
	Start(message string)

	// Step reports a new step in the operation
	Step(message string)

	// Warning reports a non-fatal condition the operation continued past
	Warning(message string)

	// Error reports an error condition
	Error(message string)

	// Success reports successful completion
	Success(message string)

	// End finalizes progress reporting
	End()
}

// ConsoleReporter implements Reporter by printing messages to console.
// Status icons come from the theme and degrade to plain words without colour.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a new ConsoleReporter
func NewConsoleReporter() *ConsoleReporter {
	return NewConsoleReporterTo(os.Stdout)
}

// NewConsoleReporterTo creates a ConsoleReporter writing to w.
func NewConsoleReporterTo(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: w}
}

func (r *ConsoleReporter) Start(message string) {
	fmt.Fprintf(r.out, "⚡ %s...\n", message)
}

func (r *ConsoleReporter) Step(message string) {
	fmt.Fprintf(r.out, "  ▶ %s...\n", message)
}

func (r *ConsoleReporter) Warning(message string) {
	fmt.Fprintf(r.out, "  %s %s\n", style.WarningIcon(), message)
}

func (r *ConsoleReporter) Error(message string) {
	fmt.Fprintf(r.out, "  %s %s\n", style.ErrorIcon(), message)
}

func (r *ConsoleReporter) Success(message string) {
	fmt.Fprintf(r.out, "  %s %s\n", style.SuccessIcon(), message)
}

func (r *ConsoleReporter) End() {}

// NopReporter implements Reporter with no-op operations
type NopReporter struct{}

// NewNopReporter creates a new NopReporter
func NewNopReporter() *NopReporter {
	return &NopReporter{}
}

func (r *NopReporter) Start(message string)   {}
func (r *NopReporter) Step(message string)    {}
func (r *NopReporter) Warning(message string) {}
func (r *NopReporter) Error(message string)   {}
func (r *NopReporter) Success(message string) {}
func (r *NopReporter) End()                   {}
