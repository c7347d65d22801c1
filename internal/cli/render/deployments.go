package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/barista/internal/domain/models"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// Color styles for table format
var (
	networkHeader      = color.New(color.BgCyan, color.FgBlack, color.Bold)
	nameStyle          = color.New(color.FgGreen, color.Bold)
	addressStyle       = color.New(color.FgWhite)
	timestampStyle     = color.New(color.Faint)
	tagsStyle          = color.New(color.FgCyan)
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	labelStyle         = color.New(color.FgHiBlack)
)

// DeploymentsRenderer renders deployment lists grouped by network
type DeploymentsRenderer struct {
	out io.Writer
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out}
}

// RenderDeploymentList renders one table per network
func (r *DeploymentsRenderer) RenderDeploymentList(result *usecase.DeploymentListResult) error {
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	groups := lo.GroupBy(result.Deployments, func(d *models.Deployment) string { return d.Network })
	networks := lo.Uniq(lo.Map(result.Deployments, func(d *models.Deployment, _ int) string { return d.Network }))

	for i, network := range networks {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		deps := groups[network]
		fmt.Fprintf(r.out, "%s %s\n", networkHeader.Sprintf(" %s ", network), labelStyle.Sprintf("chain %d", deps[0].ChainID))

		t := newTable(r.out)
		t.AppendHeader(table.Row{"NAME", "CONTRACT", "ADDRESS", "TAGS", "DEPLOYED"})
		for _, dep := range deps {
			created := ""
			if !dep.CreatedAt.IsZero() {
				created = dep.CreatedAt.Local().Format("2006-01-02 15:04")
			}
			t.AppendRow(table.Row{
				nameStyle.Sprint(dep.Name),
				dep.ContractName,
				addressStyle.Sprint(dep.Address),
				tagsStyle.Sprint(strings.Join(dep.Tags, ", ")),
				timestampStyle.Sprint(created),
			})
		}
		t.Render()
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Total deployments: %d\n", result.Summary.Total)
	return nil
}
