package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
)

// RunDeployments runs the selected deploy procedures against the configured network
type RunDeployments struct {
	config      *config.RuntimeConfig
	registry    *ProcedureRegistry
	chain       Blockchain
	accounts    AccountResolver
	deployer    *DeployContract
	deployments DeploymentRepository
	confirmer   Confirmer
	exporter    *ExportDeployments
	progress    ProgressSink
	log         *slog.Logger
}

// NewRunDeployments creates a new run deployments use case
func NewRunDeployments(
	cfg *config.RuntimeConfig,
	registry *ProcedureRegistry,
	chain Blockchain,
	accounts AccountResolver,
	deployer *DeployContract,
	deployments DeploymentRepository,
	confirmer Confirmer,
	exporter *ExportDeployments,
	progress ProgressSink,
	log *slog.Logger,
) *RunDeployments {
	return &RunDeployments{
		config:      cfg,
		registry:    registry,
		chain:       chain,
		accounts:    accounts,
		deployer:    deployer,
		deployments: deployments,
		confirmer:   confirmer,
		exporter:    exporter,
		progress:    progress,
		log:         log,
	}
}

// RunDeploymentsParams contains parameters for a deployment run
type RunDeploymentsParams struct {
	Tags       []string
	ExportPath string
}

// RunDeploymentsResult contains the result of a deployment run
type RunDeploymentsResult struct {
	Network     *config.Network
	Executed    []string
	Deployments []*models.Deployment // newly deployed in this run
	ExportPath  string
}

// Run selects, confirms and executes deploy procedures in order. The first
// failing procedure stops the run; its error is returned wrapped.
func (uc *RunDeployments) Run(ctx context.Context, params RunDeploymentsParams) (*RunDeploymentsResult, error) {
	if uc.config.Network == nil {
		return nil, fmt.Errorf("%w: pass --network or set BARISTA_NETWORK", domain.ErrNoNetwork)
	}
	// the run fills in the chain ID on its own copy
	n := *uc.config.Network
	network := &n

	procedures, err := uc.registry.Select(params.Tags)
	if err != nil {
		return nil, err
	}
	if len(procedures) == 0 {
		return nil, fmt.Errorf("no deploy procedures registered")
	}

	chainID, err := uc.chain.Connect(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network.Name, err)
	}
	network.ChainID = chainID

	if err := uc.deployments.EnsureChainID(ctx, network.Name, chainID); err != nil {
		return nil, err
	}

	names := lo.Map(procedures, func(p *DeployProcedure, _ int) string { return p.Name })
	if !network.IsDevelopment() {
		ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Run %s on %s (chain %d)", strings.Join(names, ", "), network.Name, chainID))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrAborted
		}
	}

	result := &RunDeploymentsResult{Network: network}
	for _, p := range procedures {
		uc.log.Debug("running deploy procedure", "name", p.Name, "tags", p.Tags, "network", network.Name)

		env := &procedureEnvironment{
			network:     network,
			tags:        p.Tags,
			accounts:    uc.accounts,
			deployer:    uc.deployer,
			deployments: uc.deployments,
			progress:    uc.progress,
		}
		err := p.Run(ctx, env)
		result.Deployments = append(result.Deployments, env.produced...)
		if err != nil {
			return result, fmt.Errorf("deploy procedure %s failed: %w", p.Name, err)
		}
		result.Executed = append(result.Executed, p.Name)
	}

	if params.ExportPath != "" {
		if err := uc.exporter.Export(ctx, ExportDeploymentsParams{Network: network, Path: params.ExportPath}); err != nil {
			return result, err
		}
		result.ExportPath = params.ExportPath
	}

	return result, nil
}
