package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/barista/internal/cli/render"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		tags       []string
		exportPath string
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Run deploy procedures",
		Long: `Run the deploy procedures selected by --tags (all procedures when omitted)
against the network given by --network. Dependencies of the selected
procedures run first; the run stops at the first failing procedure.

On non-development chains a confirmation is requested unless
--non-interactive is set.`,
		Example: `  # Deploy everything on a local anvil
  barista deploy --network anvil

  # Deploy Frappucino on sepolia with a custom bond contract
  barista deploy --tags Frappucino --network sepolia --bond-address 0x5d3DD9f67618b1500f3a03D66921A67dAe09C298

  # Deploy and write the network's deployments to a file
  barista deploy -n anvil --export deployments.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RunDeployments.Run(cmd.Context(), usecase.RunDeploymentsParams{
				Tags:       tags,
				ExportPath: exportPath,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewRunRenderer(cmd.OutOrStdout()).RenderRunResult(result)
		},
	}

	cmd.Flags().StringSliceVarP(&tags, "tags", "t", nil, "Only run procedures with these tags (comma separated)")
	cmd.Flags().String("bond-address", "", "Bond contract address passed to Frappucino")
	cmd.Flags().StringVar(&exportPath, "export", "", "Write the network's deployments to this file (.json or .yaml)")

	return cmd
}
