package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/barista/internal/cli/render"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Export a network's deployments",
		Long: `Write the deployments recorded for --network to a single file, keyed by
deployment name. Files ending in .yaml or .yml are written as YAML,
everything else as JSON.`,
		Example: `  barista export --network sepolia deployments.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := app.ExportDeployments.Export(cmd.Context(), usecase.ExportDeploymentsParams{
				Network: app.Config.Network,
				Path:    args[0],
			}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess(fmt.Sprintf("Exported %s deployments to %s", app.Config.Network.Name, args[0])))
			return nil
		},
	}
}
