package render

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
	"github.com/trebuchet-org/barista/internal/usecase"
)

func init() {
	color.NoColor = true
}

func frappucino(network string, chainID uint64) *models.Deployment {
	return &models.Deployment{
		Name:            "Frappucino",
		ContractName:    "Frappucino",
		Address:         "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		TransactionHash: "0x4b8e0c8a2cdb4b7e1f3f2a6d55c1b6e8b5b9c1d0e2f3a4b5c6d7e8f9a0b1c2d3",
		Receipt:         &models.Receipt{BlockNumber: 1, GasUsed: 123456, Status: 1},
		Args:            []any{"0x5d3DD9f67618b1500f3a03D66921A67dAe09C298"},
		NumDeployments:  1,
		Network:         network,
		ChainID:         chainID,
		Tags:            []string{"Frappucino"},
		CreatedAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestDeploymentsRenderer(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDeploymentsRenderer(&buf).RenderDeploymentList(&usecase.DeploymentListResult{}))
		assert.Equal(t, "No deployments found\n", buf.String())
	})

	t.Run("grouped by network", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.DeploymentListResult{
			Deployments: []*models.Deployment{frappucino("anvil", 31337), frappucino("sepolia", 11155111)},
			Summary:     usecase.DeploymentSummary{Total: 2},
		}
		require.NoError(t, NewDeploymentsRenderer(&buf).RenderDeploymentList(result))

		out := buf.String()
		assert.Contains(t, out, " anvil ")
		assert.Contains(t, out, "chain 11155111")
		assert.Contains(t, out, "0x5FbDB2315678afecb367f032d93F642f64180aa3")
		assert.Contains(t, out, "Total deployments: 2")
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("anvil")), bytes.Index(buf.Bytes(), []byte("sepolia")))
	})
}

func TestDeploymentRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewDeploymentRenderer(&buf).RenderDeployment(frappucino("anvil", 31337)))

	out := buf.String()
	assert.Contains(t, out, "Deployment: anvil/Frappucino")
	assert.Contains(t, out, "anvil (chain 31337)")
	assert.Contains(t, out, "123456")
	assert.Contains(t, out, "0x5d3DD9f67618b1500f3a03D66921A67dAe09C298")
	assert.NotContains(t, out, "Deployer:")
}

func TestRunRenderer(t *testing.T) {
	network := &config.Network{Name: "anvil", ChainID: 31337}

	t.Run("nothing new", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewRunRenderer(&buf).RenderRunResult(&usecase.RunDeploymentsResult{Network: network}))
		assert.Contains(t, buf.String(), "Nothing new to deploy on anvil")
	})

	t.Run("deployed and exported", func(t *testing.T) {
		var buf bytes.Buffer
		result := &usecase.RunDeploymentsResult{
			Network:     network,
			Executed:    []string{"Frappucino"},
			Deployments: []*models.Deployment{frappucino("anvil", 31337)},
			ExportPath:  "deployments.json",
		}
		require.NoError(t, NewRunRenderer(&buf).RenderRunResult(result))

		out := buf.String()
		assert.Contains(t, out, "Deployed on anvil (chain 31337):")
		assert.Contains(t, out, "0x4b8e0c…c2d3")
		assert.Contains(t, out, "Exported deployments to deployments.json")
	})
}

func TestProceduresRenderer(t *testing.T) {
	var buf bytes.Buffer
	result := &usecase.ListProceduresResult{
		Procedures: []*usecase.DeployProcedure{
			{Name: "Bond", Tags: []string{"Bond"}},
			{Name: "Frappucino", Tags: []string{"Frappucino"}, Dependencies: []string{"Bond"}},
		},
		Order: []string{"Bond", "Frappucino"},
	}
	require.NoError(t, NewProceduresRenderer(&buf).RenderProcedures(result))
	assert.Contains(t, buf.String(), "Run order: Bond → Frappucino")
}

func TestNetworksRenderer(t *testing.T) {
	var buf bytes.Buffer
	result := &usecase.ListNetworksResult{Networks: []usecase.NetworkStatus{
		{Name: "anvil", ChainID: 31337},
		{Name: "sepolia", Error: errors.New("connection refused")},
	}}
	require.NoError(t, NewNetworksRenderer(&buf).RenderNetworksList(result))
	assert.Contains(t, buf.String(), "  ✅ anvil - Chain ID: 31337\n")
	assert.Contains(t, buf.String(), "  ❌ sepolia - Error: connection refused\n")
}

func TestCheckRenderer(t *testing.T) {
	var buf bytes.Buffer
	result := &usecase.CheckDeploymentsResult{
		Network: &config.Network{Name: "anvil"},
		Checks: []usecase.DeploymentCheck{
			{Deployment: frappucino("anvil", 31337), Exists: false, Reason: "no code at address"},
		},
		Missing: 1,
	}
	require.NoError(t, NewCheckRenderer(&buf).RenderCheck(result))
	assert.Contains(t, buf.String(), "✗ no code at address")
	assert.Contains(t, buf.String(), "1 of 1 deployments missing on anvil")
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "❌ Boom", FormatError("boom"))
}
