package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// CheckRenderer renders on-chain deployment checks
type CheckRenderer struct {
	out io.Writer
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer) *CheckRenderer {
	return &CheckRenderer{out: out}
}

// RenderCheck renders one row per deployment
func (r *CheckRenderer) RenderCheck(result *usecase.CheckDeploymentsResult) error {
	if len(result.Checks) == 0 {
		fmt.Fprintf(r.out, "No deployments recorded for %s\n", result.Network.Name)
		return nil
	}

	ok := color.New(color.FgGreen)
	missing := color.New(color.FgRed)

	t := newTable(r.out)
	t.AppendHeader(table.Row{"NAME", "ADDRESS", "STATUS"})
	for _, c := range result.Checks {
		status := ok.Sprint("✓ deployed")
		if !c.Exists {
			status = missing.Sprintf("✗ %s", c.Reason)
		}
		t.AppendRow(table.Row{nameStyle.Sprint(c.Deployment.Name), addressStyle.Sprint(c.Deployment.Address), status})
	}
	t.Render()

	fmt.Fprintln(r.out)
	if result.Missing == 0 {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("All %d deployments found on %s", len(result.Checks), result.Network.Name)))
	} else {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%d of %d deployments missing on %s", result.Missing, len(result.Checks), result.Network.Name)))
	}
	return nil
}
