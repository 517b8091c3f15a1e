package profile

import (
	"github.com/modwarden/modwarden/cmd/cmdutils"
	"github.com/modwarden/modwarden/cmd/profile/command"

	"github.com/spf13/cobra"
)

func GetRootCmd(f *cmdutils.Factory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   "Manage mod profiles",
		Long:    `Commands to create, select and inspect mod profiles`,
	}

	rootCmd.AddCommand(command.NewListCmd(f))
	rootCmd.AddCommand(command.NewCreateCmd(f))
	rootCmd.AddCommand(command.NewUseCmd(f))

	return rootCmd
}
