package scan

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/modwarden/modwarden/cmd/cmdutils"
	"github.com/modwarden/modwarden/config"
	"github.com/modwarden/modwarden/internal/style"
	"github.com/modwarden/modwarden/internal/terminal"
	"github.com/modwarden/modwarden/internal/tui"
	modscan "github.com/modwarden/modwarden/module/mods/scan"
	"github.com/modwarden/modwarden/module/mods/types"
	"github.com/modwarden/modwarden/util/common/printer"
	"github.com/modwarden/modwarden/util/common/progress"

	"github.com/MakeNowJust/heredoc"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// GetRootCmd wires up:
//
//	mw scan
func GetRootCmd(f *cmdutils.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Add the mods found in a profile's output directory",
		Long: heredoc.Doc(`
			Identify every .jar file in the profile's output directory on Modrinth
			and CurseForge, and add the matching projects to the profile.

			Files are identified by content: Modrinth by SHA-1, CurseForge by
			fingerprint. When a file is known to both platforms the preferred
			platform wins. Files that no platform knows, and projects that are
			already tracked, are reported and skipped.

			The scan stops at the first registry failure. Mods added before that
			point are kept and saved; with --interactive you are asked first.
		`),
		Example: heredoc.Doc(`
			# Scan the active profile
			$ mw scan

			# Prefer CurseForge projects for a specific profile
			$ mw scan --profile survival --platform curseforge

			# Register the mods of another directory into the active profile
			$ mw scan --dir ~/Downloads/mods
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), f, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&config.Global.Scan.Platform, "platform", "",
		"Preferred platform when a mod is on both (modrinth|curseforge)")
	cmd.Flags().StringVar(&config.Global.Scan.Profile, "profile", "", "Profile to scan (defaults to the active profile)")
	cmd.Flags().StringVar(&config.Global.Scan.Dir, "dir", "", "Directory to scan instead of the profile's output directory")

	return cmd
}

func runScan(ctx context.Context, f *cmdutils.Factory, out io.Writer) error {
	settings, err := f.Settings(config.Global.Scan.Platform)
	if err != nil {
		return err
	}
	cfg, err := f.Config()
	if err != nil {
		return err
	}
	profile, err := cfg.Profile(config.Global.Scan.Profile)
	if err != nil {
		return err
	}

	preferred, err := preferredPlatform(settings.PreferredPlatform)
	if err != nil {
		return err
	}

	jsonOutput := config.Global.Format == "json"
	scanner, err := f.Scanner(settings, newReporter(jsonOutput))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChan)
	go func() {
		select {
		case <-signalChan:
			fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// The directory override must not end up in the saved profile.
	outputDir := profile.OutputDir
	if config.Global.Scan.Dir != "" {
		profile.OutputDir = config.Global.Scan.Dir
	}
	report, scanErr := scanner.Scan(ctx, profile, preferred)
	profile.OutputDir = outputDir

	if shouldSave(report, scanErr) {
		if err := f.SaveConfig(); err != nil {
			if scanErr != nil {
				log.Error().Err(err).Msg("Failed to save config")
				return scanErr
			}
			return err
		}
	}

	if report != nil {
		if jsonOutput {
			opts := printer.DefaultJsonOptions()
			opts.Writer = out
			if err := printer.PrintJsonWithOptions(report, opts); err != nil {
				return err
			}
		} else {
			fmt.Fprintln(out, summary(report, preferred))
		}
	}
	return scanErr
}

// newReporter picks how per-file notices are shown. A spinner runs while
// each file is identified when the terminal can draw it.
func newReporter(jsonOutput bool) progress.Reporter {
	switch {
	case jsonOutput:
		return progress.NewNopReporter()
	case style.Enabled && !terminal.IsCI():
		return tui.NewSpinnerReporter(progress.NewStyledReporter(), os.Stdout)
	default:
		return progress.NewAutoReporter()
	}
}

var confirm = tui.Confirm

// shouldSave reports whether the mods a scan added are written back. Mods
// added before a failure are kept unless an interactive user declines.
func shouldSave(report *modscan.Report, scanErr error) bool {
	if report == nil || report.Added == 0 {
		return false
	}
	if scanErr == nil || !config.Global.Interactive {
		return true
	}
	keep, err := confirm(
		fmt.Sprintf("Keep the %d mods added before the scan stopped?", report.Added),
		scanErr.Error(),
	)
	if err != nil {
		log.Warn().Err(err).Msg("No answer, keeping the mods added so far")
		return true
	}
	return keep
}

// preferredPlatform falls back to a prompt in interactive mode and to
// Modrinth otherwise.
func preferredPlatform(configured types.Platform) (types.Platform, error) {
	if configured != "" {
		return configured, nil
	}
	if config.Global.Interactive {
		return tui.PromptPlatform()
	}
	return types.Modrinth, nil
}

func summary(r *modscan.Report, preferred types.Platform) string {
	line := fmt.Sprintf("Scanned %d files preferring %s: %d added, %d already tracked, %d not found",
		r.Scanned, style.Platform(preferred.DisplayName()), r.Added, r.AlreadyTracked, r.NotFound)
	if r.Added > 0 {
		return style.Success.Render(line)
	}
	return style.Bold.Render(line)
}
