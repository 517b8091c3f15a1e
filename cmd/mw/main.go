package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/modwarden/modwarden/cmd/cmdutils"
	"github.com/modwarden/modwarden/cmd/profile"
	"github.com/modwarden/modwarden/cmd/scan"
	"github.com/modwarden/modwarden/config"
	"github.com/modwarden/modwarden/internal/style"
	"github.com/modwarden/modwarden/internal/terminal"
	"github.com/modwarden/modwarden/internal/tui"

	"github.com/MakeNowJust/heredoc"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// version is set via ldflags during build
var version = "dev"

func main() {
	factory := cmdutils.NewFactory()
	rootCmd := newRootCmd(factory)

	// Apply styled help template when running in a colour-capable terminal
	style.Init(terminal.Detect(false, false, false).ColorEnabled)
	if helpTpl := tui.StyledHelpTemplate(); helpTpl != "" {
		rootCmd.SetUsageTemplate(helpTpl)
	}

	if err := rootCmd.Execute(); err != nil {
		if style.Enabled {
			fmt.Fprintln(os.Stderr, style.Error.Render("Error: "+err.Error()))
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(factory *cmdutils.Factory) *cobra.Command {
	var jsonFlag bool

	rootCmd := &cobra.Command{
		Use:           "mw",
		Short:         "Keep track of the mods in your game profiles",
		SilenceUsage:  true,
		SilenceErrors: true, //prevent duplicate printing of errors
		Long: heredoc.Doc(`
			modwarden tracks the mods of your game profiles against Modrinth and
			CurseForge.

			Create a profile for a mods directory, then run 'mw scan' to add the
			mods already installed there.
		`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			termInfo := terminal.Detect(config.Global.NoColor, config.Global.Interactive, jsonFlag)
			style.Init(termInfo.ColorEnabled)
			config.Global.Interactive = termInfo.InteractiveEnabled

			// Override format to JSON when --json is explicitly passed
			if termInfo.ForceJSON {
				config.Global.Format = "json"
			}

			setupLogging(config.Global.Verbose, !termInfo.ColorEnabled)
			return nil
		},
	}

	bindGlobalFlags(rootCmd.PersistentFlags(), &jsonFlag)

	rootCmd.AddCommand(scan.GetRootCmd(factory))
	rootCmd.AddCommand(profile.GetRootCmd(factory))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// bindGlobalFlags binds the flags available to all commands directly to the
// global config.
func bindGlobalFlags(flags *pflag.FlagSet, jsonFlag *bool) {
	flags.StringVar(&config.Global.ConfigPath, "config", "",
		"Path to the config file (default $XDG_CONFIG_HOME/modwarden/config.yaml)")
	flags.StringVar(&config.Global.Format, "format", "table", "Format of the result (table|json)")
	flags.BoolVarP(&config.Global.Verbose, "verbose", "v", false, "Enable verbose logging to console")
	flags.BoolVarP(&config.Global.Interactive, "interactive", "i", false,
		"Prompt for missing values (requires a terminal)")
	flags.BoolVar(&config.Global.NoColor, "no-color", false,
		"Disable colour output (also respects NO_COLOR env)")
	flags.BoolVar(jsonFlag, "json", false,
		"Output results as JSON (equivalent to --format=json)")
}

// setupLogging routes zerolog to the console when verbose. Otherwise only
// warnings reach the user, through pterm.
func setupLogging(verbose, noColor bool) {
	if verbose {
		logWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    noColor,
		}
		log.Logger = zerolog.New(logWriter).With().Timestamp().Logger()
		return
	}
	log.Logger = zerolog.New(io.Discard).Level(zerolog.WarnLevel).Hook(cmdutils.WarningHook{})
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mw",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mw version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Built with %s\n", runtime.Version())
		},
	}
}
