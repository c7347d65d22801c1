package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/trebuchet-org/barista/internal/domain/models"
)

// DeploymentRenderer renders a single deployment
type DeploymentRenderer struct {
	out io.Writer
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer) *DeploymentRenderer {
	return &DeploymentRenderer{out: out}
}

// RenderDeployment renders the deployment details
func (r *DeploymentRenderer) RenderDeployment(dep *models.Deployment) error {
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprintf("Deployment: %s/%s", dep.Network, dep.Name))
	fmt.Fprintln(r.out, strings.Repeat("─", 50))

	r.field("Contract", dep.ContractName)
	r.field("Address", addressStyle.Sprint(dep.Address))
	r.field("Network", fmt.Sprintf("%s (chain %d)", dep.Network, dep.ChainID))
	r.field("Deployer", dep.Deployer)
	r.field("Transaction", dep.TransactionHash)
	if dep.Receipt != nil {
		r.field("Block", fmt.Sprintf("%d", dep.Receipt.BlockNumber))
		r.field("Gas Used", fmt.Sprintf("%d", dep.Receipt.GasUsed))
	}
	if len(dep.Args) > 0 {
		args := make([]string, len(dep.Args))
		for i, a := range dep.Args {
			args[i] = fmt.Sprint(a)
		}
		r.field("Arguments", strings.Join(args, ", "))
	}
	r.field("Deployments", fmt.Sprintf("%d", dep.NumDeployments))
	if len(dep.Tags) > 0 {
		r.field("Tags", tagsStyle.Sprint(strings.Join(dep.Tags, ", ")))
	}
	if !dep.CreatedAt.IsZero() {
		r.field("Created", timestampStyle.Sprint(dep.CreatedAt.Local().Format("2006-01-02 15:04:05")))
	}
	return nil
}

func (r *DeploymentRenderer) field(label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(r.out, "%s %s\n", labelStyle.Sprintf("%-12s", label+":"), value)
}
