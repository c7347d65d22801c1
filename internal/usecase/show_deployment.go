package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
)

// ShowDeployment looks up a single deployment record
type ShowDeployment struct {
	config *config.RuntimeConfig
	repo   DeploymentRepository
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(cfg *config.RuntimeConfig, repo DeploymentRepository) *ShowDeployment {
	return &ShowDeployment{config: cfg, repo: repo}
}

// Run resolves a reference of the form "Name" or "network/Name". A bare
// name uses the configured network, or searches all networks when none is set.
func (uc *ShowDeployment) Run(ctx context.Context, reference string) (*models.Deployment, error) {
	if network, name, ok := strings.Cut(reference, "/"); ok {
		return uc.repo.GetDeployment(ctx, network, name)
	}

	if uc.config.Network != nil {
		return uc.repo.GetDeployment(ctx, uc.config.Network.Name, reference)
	}

	matches, err := uc.repo.ListDeployments(ctx, domain.DeploymentFilter{})
	if err != nil {
		return nil, err
	}
	var found []*models.Deployment
	for _, dep := range matches {
		if dep.Name == reference {
			found = append(found, dep)
		}
	}
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("deployment %s: %w", reference, domain.ErrNotFound)
	case 1:
		return found[0], nil
	default:
		networks := make([]string, len(found))
		for i, dep := range found {
			networks[i] = dep.Network + "/" + dep.Name
		}
		return nil, fmt.Errorf("multiple deployments found for %s: %s (use --network or network/name)", reference, strings.Join(networks, ", "))
	}
}
