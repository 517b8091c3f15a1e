package command

import (
	"fmt"

	"github.com/modwarden/modwarden/cmd/cmdutils"
	"github.com/modwarden/modwarden/module/mods/types"
	"github.com/modwarden/modwarden/util/common/printer"

	"github.com/spf13/cobra"
)

// modRow is one tracked mod as printed by the list command.
type modRow struct {
	Name      string `json:"name"`
	Platform  string `json:"platform"`
	ProjectID string `json:"projectId"`
}

func modRows(p *types.Profile) []modRow {
	rows := make([]modRow, 0, len(p.Mods))
	for _, m := range p.Mods {
		rows = append(rows, modRow{
			Name:      m.Name,
			Platform:  m.Identity.Platform().DisplayName(),
			ProjectID: m.Identity.String(),
		})
	}
	return rows
}

// NewListCmd wires up:
//
//	mw profile list
func NewListCmd(f *cmdutils.Factory) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the mods tracked by a profile",
		Long:  "Lists the mods tracked by the active profile, or by the profile given with --name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.Config()
			if err != nil {
				return err
			}
			profile, err := cfg.Profile(name)
			if err != nil {
				return err
			}

			options := printer.DefaultPrintOptions()
			options.Writer = cmd.OutOrStdout()
			options.Footer = fmt.Sprintf("%s: %d mods in %s", profile.Name, len(profile.Mods), profile.OutputDir)
			options.ColumnMapping = printer.ColumnMapping{
				{"name", "Name"},
				{"platform", "Platform"},
				{"projectId", "Project ID"},
			}
			return printer.PrintWithOptions(modRows(profile), options)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "profile to list (defaults to the active profile)")

	return cmd
}
