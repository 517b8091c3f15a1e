package tui

import (
	"github.com/modwarden/modwarden/internal/style"
)

// StyledHelpTemplate returns a cobra usage template whose fixed headings are
// rendered with the theme. Command and flag names stay plain because they
// are filled in by cobra's template engine. Returns "" when colour is
// disabled so cobra keeps its default template.
func StyledHelpTemplate() string {
	if !style.Enabled {
		return ""
	}

	heading := style.Title.Render
	dim := style.DimText.Render

	return heading("Usage") + `:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

` + heading("Aliases") + `:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

` + heading("Examples") + `:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

` + heading("Commands") + `:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }}  {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

` + heading("Flags") + `:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

` + heading("Global Flags") + `:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

` + dim(`Use "{{.CommandPath}} [command] --help" for more information about a command.`) + `{{end}}
`
}
