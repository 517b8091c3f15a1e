// Package terminal decides what the current process may do with its
// terminal: colour, prompts and output format.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Info holds the resolved terminal state for the current process.
// Create one at startup via Detect() and pass it down.
type Info struct {
	// IsTerminal is true when stdout is connected to a TTY.
	IsTerminal bool
	// StdinIsTerminal is true when stdin is connected to a TTY.
	StdinIsTerminal bool
	// ColorEnabled is true when ANSI colours should be emitted.
	ColorEnabled bool
	// InteractiveEnabled is true when prompts are allowed.
	InteractiveEnabled bool
	// ForceJSON is true when --json was explicitly passed.
	ForceJSON bool
}

// Detect inspects the environment and returns a populated Info.
//
//	noColor      – true when --no-color was passed (NO_COLOR is checked here)
//	interactive  – true when --interactive / -i was passed
//	forceJSON    – true when --json was passed
func Detect(noColor, interactive, forceJSON bool) Info {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))

	// https://no-color.org/
	envNoColor := os.Getenv("NO_COLOR") != ""

	return Info{
		IsTerminal:      isTTY,
		StdinIsTerminal: stdinTTY,
		ColorEnabled:    isTTY && !noColor && !envNoColor && !IsDumb(),
		// Prompts read stdin and draw on stdout, and never run in CI or
		// when JSON output was requested.
		InteractiveEnabled: interactive && isTTY && stdinTTY && !forceJSON && !IsCI(),
		ForceJSON:          forceJSON,
	}
}

// IsDumb returns true when the terminal is known to have no capabilities
// (e.g. TERM=dumb or running inside Emacs).
func IsDumb() bool {
	t := strings.ToLower(os.Getenv("TERM"))
	return t == "dumb" || t == ""
}

var ciVars = []string{"CI", "GITHUB_ACTIONS", "JENKINS_URL", "GITLAB_CI", "CIRCLECI", "TRAVIS"}

// IsCI returns true when a well-known CI environment variable is set.
func IsCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}
