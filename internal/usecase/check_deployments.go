package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
)

// CheckDeployments verifies that recorded deployments still have code on chain
type CheckDeployments struct {
	config *config.RuntimeConfig
	repo   DeploymentRepository
	chain  Blockchain
	sink   ProgressSink
}

// NewCheckDeployments creates a new CheckDeployments use case
func NewCheckDeployments(cfg *config.RuntimeConfig, repo DeploymentRepository, chain Blockchain, sink ProgressSink) *CheckDeployments {
	return &CheckDeployments{config: cfg, repo: repo, chain: chain, sink: sink}
}

// DeploymentCheck is the on-chain status of one deployment
type DeploymentCheck struct {
	Deployment *models.Deployment
	Exists     bool
	Reason     string
}

// CheckDeploymentsResult contains the result of a check
type CheckDeploymentsResult struct {
	Network *config.Network
	Checks  []DeploymentCheck
	Missing int
}

// Run executes the use case
func (uc *CheckDeployments) Run(ctx context.Context) (*CheckDeploymentsResult, error) {
	network := uc.config.Network
	if network == nil {
		return nil, fmt.Errorf("%w: pass --network", domain.ErrNoNetwork)
	}

	chainID, err := uc.chain.Connect(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network.Name, err)
	}
	network.ChainID = chainID

	deployments, err := uc.repo.ListDeployments(ctx, domain.DeploymentFilter{Network: network.Name})
	if err != nil {
		return nil, err
	}

	result := &CheckDeploymentsResult{Network: network}
	for i, dep := range deployments {
		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "checking",
			Message: fmt.Sprintf("Checking %s (%d/%d)", dep.Name, i+1, len(deployments)),
			Spinner: true,
		})
		if dep.ChainID != 0 && dep.ChainID != chainID {
			result.Checks = append(result.Checks, DeploymentCheck{
				Deployment: dep,
				Reason:     fmt.Sprintf("recorded on chain %d, connected to %d", dep.ChainID, chainID),
			})
			result.Missing++
			continue
		}
		exists, reason, err := uc.chain.CheckDeploymentExists(ctx, dep.Address)
		if err != nil {
			uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
			return nil, err
		}
		if !exists {
			result.Missing++
		}
		result.Checks = append(result.Checks, DeploymentCheck{Deployment: dep, Exists: exists, Reason: reason})
	}
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})

	return result, nil
}
