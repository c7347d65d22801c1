package deployments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
	"github.com/trebuchet-org/barista/internal/usecase"
)

const (
	DeploymentsDir = "deployments"
	ChainIDFile    = ".chainId"
)

// FileRepository stores deployments as deployments/<network>/<Name>.json,
// one file per deployment, with the network's chain ID in .chainId
type FileRepository struct {
	rootDir string
	mu      sync.RWMutex
}

// NewFileRepository creates a repository rooted at rootDir (the deployments directory)
func NewFileRepository(rootDir string) *FileRepository {
	return &FileRepository{rootDir: rootDir}
}

// NewFileRepositoryFromConfig creates a new FileRepository from RuntimeConfig
func NewFileRepositoryFromConfig(cfg *config.RuntimeConfig) *FileRepository {
	return NewFileRepository(filepath.Join(cfg.ProjectRoot, DeploymentsDir))
}

// GetDeployment reads a single deployment record
func (m *FileRepository) GetDeployment(ctx context.Context, network, name string) (*models.Deployment, error) {
	if err := checkSegment(network); err != nil {
		return nil, err
	}
	if err := checkSegment(name); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	dep, err := m.loadFile(network, name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("deployment %s/%s: %w", network, name, domain.ErrNotFound)
	}
	return dep, err
}

// ListDeployments retrieves deployments matching the filter
func (m *FileRepository) ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	networks, err := m.networks()
	if err != nil {
		return nil, err
	}

	var result []*models.Deployment
	for _, network := range networks {
		if filter.Network != "" && network != filter.Network {
			continue
		}

		entries, err := os.ReadDir(filepath.Join(m.rootDir, network))
		if err != nil {
			return nil, fmt.Errorf("failed to read deployments/%s: %w", network, err)
		}
		for _, entry := range entries {
			name, ok := strings.CutSuffix(entry.Name(), ".json")
			if entry.IsDir() || !ok || strings.HasPrefix(name, ".") {
				continue
			}

			dep, err := m.loadFile(network, name)
			if err != nil {
				return nil, err
			}

			// Apply filters
			if filter.ContractName != "" && dep.ContractName != filter.ContractName {
				continue
			}
			if filter.Tag != "" && !dep.HasTag(filter.Tag) {
				continue
			}
			result = append(result, dep)
		}
	}

	return result, nil
}

// SaveDeployment writes a deployment record
func (m *FileRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	if err := checkSegment(deployment.Network); err != nil {
		return err
	}
	if err := checkSegment(deployment.Name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	dir := filepath.Join(m.rootDir, deployment.Network)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create deployments directory: %w", err)
	}

	data, err := json.MarshalIndent(deployment, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(filepath.Join(dir, deployment.Name+".json"), data)
}

// ChainID returns the chain ID recorded for a network, 0 if none
func (m *FileRepository) ChainID(ctx context.Context, network string) (uint64, error) {
	if err := checkSegment(network); err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readChainID(network)
}

// EnsureChainID records chainID for a network, refusing a directory that
// already belongs to a different chain
func (m *FileRepository) EnsureChainID(ctx context.Context, network string, chainID uint64) error {
	if err := checkSegment(network); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	recorded, err := m.readChainID(network)
	if err != nil {
		return err
	}
	if recorded != 0 {
		if recorded != chainID {
			return fmt.Errorf("%w: deployments/%s belongs to chain %d, but the RPC reports chain %d",
				domain.ErrNetworkMismatch, network, recorded, chainID)
		}
		return nil
	}

	dir := filepath.Join(m.rootDir, network)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create deployments directory: %w", err)
	}
	return writeAtomic(filepath.Join(dir, ChainIDFile), []byte(strconv.FormatUint(chainID, 10)))
}

func (m *FileRepository) readChainID(network string) (uint64, error) {
	data, err := os.ReadFile(filepath.Join(m.rootDir, network, ChainIDFile))
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s for %s: %w", ChainIDFile, network, err)
	}
	return id, nil
}

// networks lists network directories in name order
func (m *FileRepository) networks() ([]string, error) {
	entries, err := os.ReadDir(m.rootDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read deployments directory: %w", err)
	}

	var networks []string
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			networks = append(networks, entry.Name())
		}
	}
	slices.Sort(networks)
	return networks, nil
}

// loadFile decodes one record. Numbers are kept as json.Number so that
// constructor arguments round-trip without float conversion.
func (m *FileRepository) loadFile(network, name string) (*models.Deployment, error) {
	data, err := os.ReadFile(filepath.Join(m.rootDir, network, name+".json"))
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var dep models.Deployment
	if err := dec.Decode(&dep); err != nil {
		return nil, fmt.Errorf("failed to parse deployments/%s/%s.json: %w", network, name, err)
	}
	dep.Name = name
	if dep.Network == "" {
		dep.Network = network
	}
	return &dep, nil
}

// writeAtomic writes to a temp file first, then renames it into place
func writeAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func checkSegment(s string) error {
	if s == "" || s == "." || s == ".." || strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("invalid deployment path segment %q", s)
	}
	return nil
}

var _ usecase.DeploymentRepository = (*FileRepository)(nil)
