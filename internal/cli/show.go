package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/barista/internal/cli/render"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <deployment>",
		Short: "Show a recorded deployment",
		Long: `Show a recorded deployment. The reference is either <network>/<Name>
or a bare <Name>, resolved against --network.`,
		Example: `  barista show sepolia/Frappucino
  barista show Frappucino --network sepolia --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			deployment, err := app.ShowDeployment.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), deployment)
			}
			return render.NewDeploymentRenderer(cmd.OutOrStdout()).RenderDeployment(deployment)
		},
	}
}
