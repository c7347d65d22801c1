package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
	"github.com/trebuchet-org/barista/internal/usecase"
)

func TestListDeployments(t *testing.T) {
	ctx := context.Background()

	deployments := []*models.Deployment{
		{
			Name:         "Frappucino",
			ContractName: "Frappucino",
			Network:      "sepolia",
			ChainID:      11155111,
			Address:      "0x1111111111111111111111111111111111111111",
			Tags:         []string{"Frappucino"},
			CreatedAt:    time.Now(),
		},
		{
			Name:         "Bond",
			ContractName: "BondContract",
			Network:      "localhost",
			ChainID:      31337,
			Address:      "0x2222222222222222222222222222222222222222",
			CreatedAt:    time.Now(),
		},
		{
			Name:         "Frappucino",
			ContractName: "Frappucino",
			Network:      "localhost",
			ChainID:      31337,
			Address:      "0x3333333333333333333333333333333333333333",
			Tags:         []string{"Frappucino"},
			CreatedAt:    time.Now(),
		},
	}

	t.Run("list all deployments", func(t *testing.T) {
		repo := new(MockDeploymentRepository)
		sink := &recordingSink{}
		uc := usecase.NewListDeployments(&config.RuntimeConfig{}, repo, sink)

		repo.On("ListDeployments", ctx, domain.DeploymentFilter{}).
			Return(append([]*models.Deployment(nil), deployments...), nil)

		result, err := uc.Run(ctx, usecase.ListDeploymentsParams{})
		require.NoError(t, err)

		require.Len(t, result.Deployments, 3)
		assert.Equal(t, "localhost", result.Deployments[0].Network)
		assert.Equal(t, "Bond", result.Deployments[0].Name)
		assert.Equal(t, "Frappucino", result.Deployments[1].Name)
		assert.Equal(t, "sepolia", result.Deployments[2].Network)
		assert.Equal(t, 3, result.Summary.Total)
		assert.Equal(t, map[string]int{"localhost": 2, "sepolia": 1}, result.Summary.ByNetwork)

		require.Len(t, sink.events, 2)
		assert.Equal(t, "loading", sink.events[0].Stage)
		assert.Equal(t, "complete", sink.events[1].Stage)
		repo.AssertExpectations(t)
	})

	t.Run("configured network and filters are passed through", func(t *testing.T) {
		repo := new(MockDeploymentRepository)
		cfg := &config.RuntimeConfig{Network: &config.Network{Name: "localhost"}}
		uc := usecase.NewListDeployments(cfg, repo, usecase.NopProgress{})

		filter := domain.DeploymentFilter{Network: "localhost", ContractName: "Frappucino", Tag: "Frappucino"}
		repo.On("ListDeployments", ctx, filter).Return([]*models.Deployment{deployments[2]}, nil)

		result, err := uc.Run(ctx, usecase.ListDeploymentsParams{ContractName: "Frappucino", Tag: "Frappucino"})
		require.NoError(t, err)
		assert.Len(t, result.Deployments, 1)
		repo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockDeploymentRepository)
		uc := usecase.NewListDeployments(&config.RuntimeConfig{}, repo, usecase.NopProgress{})

		repo.On("ListDeployments", ctx, mock.Anything).Return(nil, errors.New("permission denied"))

		result, err := uc.Run(ctx, usecase.ListDeploymentsParams{})
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestShowDeployment(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepository()
	for _, dep := range []*models.Deployment{
		{Name: "Frappucino", Network: "localhost", Address: "0x1"},
		{Name: "Frappucino", Network: "sepolia", Address: "0x2"},
		{Name: "Bond", Network: "sepolia", Address: "0x3"},
	} {
		require.NoError(t, repo.SaveDeployment(ctx, dep))
	}

	tests := []struct {
		name      string
		network   *config.Network
		reference string
		address   string
		errIs     error
		errMsg    string
	}{
		{name: "network prefix", reference: "sepolia/Frappucino", address: "0x2"},
		{name: "configured network", network: &config.Network{Name: "localhost"}, reference: "Frappucino", address: "0x1"},
		{name: "unique across networks", reference: "Bond", address: "0x3"},
		{name: "ambiguous across networks", reference: "Frappucino", errMsg: "localhost/Frappucino"},
		{name: "missing", reference: "Mocha", errIs: domain.ErrNotFound},
		{name: "missing on network", reference: "localhost/Bond", errIs: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.NewShowDeployment(&config.RuntimeConfig{Network: tt.network}, repo)
			dep, err := uc.Run(ctx, tt.reference)
			if tt.errIs != nil || tt.errMsg != "" {
				require.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.address, dep.Address)
		})
	}
}
