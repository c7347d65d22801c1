package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/barista/internal/cli/render"
)

// NewAccountsCmd creates the accounts command
func NewAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List named accounts of the current namespace",
		Long: `List the role → account mapping resolved for --namespace from the
[namespace.*.senders] tables in barista.toml. Private keys are never printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListAccounts.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewAccountsRenderer(cmd.OutOrStdout()).RenderAccounts(result)
		},
	}
}
