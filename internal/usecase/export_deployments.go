package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// ExportDeployments writes the addresses and ABIs of a network's
// deployments to a single file for front-ends and indexers
type ExportDeployments struct {
	deployments DeploymentRepository
}

// NewExportDeployments creates a new export use case
func NewExportDeployments(deployments DeploymentRepository) *ExportDeployments {
	return &ExportDeployments{deployments: deployments}
}

// ExportDeploymentsParams contains parameters for an export
type ExportDeploymentsParams struct {
	Network *config.Network
	Path    string
}

// DeploymentExport is the exported document
type DeploymentExport struct {
	Name      string                      `json:"name" yaml:"name"`
	ChainID   uint64                      `json:"chainId" yaml:"chainId"`
	Contracts map[string]ExportedContract `json:"contracts" yaml:"contracts"`
}

// ExportedContract is one exported deployment
type ExportedContract struct {
	Address string `json:"address" yaml:"address"`
	ABI     any    `json:"abi" yaml:"abi"`
}

// Build collects the export document for a network
func (uc *ExportDeployments) Build(ctx context.Context, network *config.Network) (*DeploymentExport, error) {
	if network == nil {
		return nil, domain.ErrNoNetwork
	}
	deployments, err := uc.deployments.ListDeployments(ctx, domain.DeploymentFilter{Network: network.Name})
	if err != nil {
		return nil, err
	}

	export := &DeploymentExport{
		Name:      network.Name,
		ChainID:   network.ChainID,
		Contracts: make(map[string]ExportedContract, len(deployments)),
	}
	for _, dep := range deployments {
		var abiDoc any = []any{}
		if len(dep.ABI) > 0 {
			if err := json.Unmarshal(dep.ABI, &abiDoc); err != nil {
				return nil, fmt.Errorf("invalid ABI in deployment %s: %w", dep.Name, err)
			}
		}
		if export.ChainID == 0 {
			export.ChainID = dep.ChainID
		}
		export.Contracts[dep.Name] = ExportedContract{Address: dep.Address, ABI: abiDoc}
	}
	return export, nil
}

// Export writes the export document; .yaml/.yml paths are written as YAML,
// everything else as JSON
func (uc *ExportDeployments) Export(ctx context.Context, params ExportDeploymentsParams) error {
	export, err := uc.Build(ctx, params.Network)
	if err != nil {
		return err
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(params.Path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(export)
	default:
		data, err = json.MarshalIndent(export, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	if dir := filepath.Dir(params.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	if err := os.WriteFile(params.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
