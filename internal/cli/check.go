package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/barista/internal/cli/render"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check recorded deployments still have code on chain",
		Long: `Check that every deployment recorded for --network still has code at its
address. Useful after a local devnet has been reset. Exits non-zero when a
deployment is missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckDeployments.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				err = render.JSON(cmd.OutOrStdout(), result)
			} else {
				err = render.NewCheckRenderer(cmd.OutOrStdout()).RenderCheck(result)
			}
			if err != nil {
				return err
			}

			if result.Missing > 0 {
				return fmt.Errorf("%d deployment(s) missing on %s", result.Missing, result.Network.Name)
			}
			return nil
		},
	}
}
