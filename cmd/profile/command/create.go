package command

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modwarden/modwarden/cmd/cmdutils"
	"github.com/modwarden/modwarden/config"
	"github.com/modwarden/modwarden/internal/style"
	"github.com/modwarden/modwarden/internal/tui"
	"github.com/modwarden/modwarden/module/mods/types"
	cerrors "github.com/modwarden/modwarden/util/common/errors"

	"github.com/MakeNowJust/heredoc"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewCreateCmd wires up:
//
//	mw profile create
func NewCreateCmd(f *cmdutils.Factory) *cobra.Command {
	var profile types.Profile
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a profile and make it active",
		Long: heredoc.Doc(`
			Create a profile for a mods directory and make it the active profile.

			With --interactive, missing values are asked for.
		`),
		Example: heredoc.Doc(`
			$ mw profile create --name survival --dir ~/.minecraft/mods --game-version 1.20.1 --loader fabric
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.Global.Interactive {
				if err := promptMissing(&profile); err != nil {
					return err
				}
			}
			if err := normalizeDir(&profile); err != nil {
				return err
			}

			cfg, err := f.Config()
			if err != nil {
				return err
			}
			if err := cfg.AddProfile(profile); err != nil {
				return err
			}
			if err := f.SaveConfig(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Created profile %s for %s\n",
				style.SuccessIcon(), style.Bold.Render(profile.Name), style.Code.Render(profile.OutputDir))
			fmt.Fprintln(cmd.OutOrStdout(), style.Hint("Run 'mw scan' to add the mods already installed there"))
			return nil
		},
	}

	cmd.Flags().StringVar(&profile.Name, "name", "", "name of the profile")
	cmd.Flags().StringVar(&profile.OutputDir, "dir", "", "directory the profile's mods are installed to")
	cmd.Flags().StringVar(&profile.GameVersion, "game-version", "", "game version of the profile, e.g. 1.20.1")
	cmd.Flags().StringVar(&profile.Loader, "loader", "", "mod loader of the profile, e.g. fabric")

	return cmd
}

func promptMissing(p *types.Profile) error {
	var err error
	if p.Name == "" {
		if p.Name, err = tui.PromptInput("Profile name", "", "survival", true); err != nil {
			return err
		}
	}
	if p.OutputDir == "" {
		if p.OutputDir, err = tui.PromptInput("Mods directory", "Where the profile's .jar files live", "~/.minecraft/mods", true); err != nil {
			return err
		}
	}
	if p.GameVersion == "" {
		if p.GameVersion, err = tui.PromptInput("Game version", "Optional", "1.20.1", false); err != nil {
			return err
		}
	}
	if p.Loader == "" {
		if p.Loader, err = tui.PromptSelect("Mod loader", "", []string{"fabric", "forge", "neoforge", "quilt"}); err != nil {
			return err
		}
	}
	return nil
}

// normalizeDir makes the output directory absolute and checks it is not a
// file. A directory that does not exist yet is accepted with a warning.
func normalizeDir(p *types.Profile) error {
	if p.OutputDir == "" {
		return cerrors.NewValidationError("dir", "--dir is required")
	}
	dir, err := expandHome(p.OutputDir)
	if err != nil {
		return err
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return cerrors.NewFileError(p.OutputDir, "resolve", err)
	}
	p.OutputDir = dir

	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		log.Warn().Str("dir", dir).Msg("Mods directory does not exist yet")
	case err != nil:
		return cerrors.NewFileError(dir, "stat", err)
	case !info.IsDir():
		return cerrors.NewValidationError("dir", dir+" is not a directory")
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !hasHomePrefix(path) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

func hasHomePrefix(path string) bool {
	return len(path) > 1 && path[0] == '~' && os.IsPathSeparator(path[1])
}
