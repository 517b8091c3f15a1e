package cmdutils

import (
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// WarningHook is a zerolog hook that prints warnings using pterm, so they
// reach the user even when verbose logging is off. Warnings go to Writer,
// stderr when unset, and never mix with command output on stdout.
type WarningHook struct {
	Writer io.Writer
}

// Run implements the zerolog.Hook interface
func (h WarningHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	if level != zerolog.WarnLevel {
		return
	}
	w := h.Writer
	if w == nil {
		w = os.Stderr
	}
	pterm.Warning.WithWriter(w).Println(msg)
}
