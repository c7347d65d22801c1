package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// RunRenderer renders the summary of a deploy run
type RunRenderer struct {
	out io.Writer
}

// NewRunRenderer creates a new run renderer
func NewRunRenderer(out io.Writer) *RunRenderer {
	return &RunRenderer{out: out}
}

// RenderRunResult prints the deployments created by the run
func (r *RunRenderer) RenderRunResult(result *usecase.RunDeploymentsResult) error {
	fmt.Fprintln(r.out)
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Nothing new to deploy on %s", result.Network.Name)))
	} else {
		fmt.Fprintln(r.out, sectionHeaderStyle.Sprintf("Deployed on %s (chain %d):", result.Network.Name, result.Network.ChainID))
		t := newTable(r.out)
		t.AppendHeader(table.Row{"NAME", "ADDRESS", "TX", "GAS"})
		for _, dep := range result.Deployments {
			gas := ""
			if dep.Receipt != nil {
				gas = fmt.Sprintf("%d", dep.Receipt.GasUsed)
			}
			t.AppendRow(table.Row{nameStyle.Sprint(dep.Name), addressStyle.Sprint(dep.Address), shortHash(dep.TransactionHash), gas})
		}
		t.Render()
	}
	if result.ExportPath != "" {
		fmt.Fprintf(r.out, "Exported deployments to %s\n", result.ExportPath)
	}
	return nil
}
