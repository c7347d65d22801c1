package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
)

// procedureEnvironment is the Environment handed to one procedure run
type procedureEnvironment struct {
	network     *config.Network
	tags        []string
	accounts    AccountResolver
	deployer    *DeployContract
	deployments DeploymentRepository
	progress    ProgressSink

	produced []*models.Deployment
}

var _ Environment = (*procedureEnvironment)(nil)

func (e *procedureEnvironment) Network() *config.Network {
	return e.network
}

func (e *procedureEnvironment) NamedAccounts(ctx context.Context) (map[string]common.Address, error) {
	return e.accounts.NamedAccounts(ctx)
}

func (e *procedureEnvironment) Deploy(ctx context.Context, name string, opts DeployOptions) (*DeployResult, error) {
	result, err := e.deployer.Execute(ctx, DeployContractParams{
		Network: e.network,
		Name:    name,
		Options: opts,
		Tags:    e.tags,
	})
	if err != nil {
		return nil, err
	}
	if result.Newly {
		e.produced = append(e.produced, result.Deployment)
	}
	return result, nil
}

func (e *procedureEnvironment) Get(ctx context.Context, name string) (*models.Deployment, error) {
	return e.deployments.GetDeployment(ctx, e.network.Name, name)
}

func (e *procedureEnvironment) Logf(format string, args ...any) {
	e.progress.Info(fmt.Sprintf(format, args...))
}
