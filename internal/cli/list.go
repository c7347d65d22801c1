package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/barista/internal/cli/render"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var (
		contractName string
		tag          string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded deployments",
		Long: `List deployments recorded under deployments/.

Without --network every network directory is listed.`,
		Example: `  # List all deployments
  barista list

  # List Frappucino deployments on sepolia
  barista list --network sepolia --contract Frappucino`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListDeployments.Run(cmd.Context(), usecase.ListDeploymentsParams{
				ContractName: contractName,
				Tag:          tag,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result.Deployments)
			}
			return render.NewDeploymentsRenderer(cmd.OutOrStdout()).RenderDeploymentList(result)
		},
	}

	cmd.Flags().StringVar(&contractName, "contract", "", "Filter by contract name")
	cmd.Flags().StringVar(&tag, "tag", "", "Filter by procedure tag")

	return cmd
}
