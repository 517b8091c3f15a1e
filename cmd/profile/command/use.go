package command

import (
	"fmt"

	"github.com/modwarden/modwarden/cmd/cmdutils"
	"github.com/modwarden/modwarden/internal/style"

	"github.com/spf13/cobra"
)

// NewUseCmd wires up:
//
//	mw profile use NAME
func NewUseCmd(f *cmdutils.Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "use NAME",
		Short: "Make a profile the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config()
			if err != nil {
				return err
			}
			if err := cfg.UseProfile(args[0]); err != nil {
				return err
			}
			if err := f.SaveConfig(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Active profile is now %s\n", style.SuccessIcon(), style.Bold.Render(args[0]))
			return nil
		},
	}
}
