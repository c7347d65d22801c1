package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/barista/internal/config"
)

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of barista",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "barista version %s\n", config.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s, built: %s\n", config.Commit, config.Date)
		},
	}
}
