package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// LocalConfigFile is the name of the local defaults file inside the data dir
const LocalConfigFile = "config.local.json"

// LocalConfigStore persists LocalConfig as JSON in the project's data dir
type LocalConfigStore struct {
	configPath string
}

// NewLocalConfigStore creates a store for <DataDir>/config.local.json
func NewLocalConfigStore(cfg *config.RuntimeConfig) *LocalConfigStore {
	return &LocalConfigStore{
		configPath: filepath.Join(cfg.DataDir, LocalConfigFile),
	}
}

// Exists checks if the config file exists
func (s *LocalConfigStore) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Load reads the configuration, falling back to defaults when absent
func (s *LocalConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	data, err := os.ReadFile(s.configPath)
	if os.IsNotExist(err) {
		return config.DefaultLocalConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var local config.LocalConfig
	if err := json.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.configPath, err)
	}
	if local.Namespace == "" {
		local.Namespace = config.DefaultLocalConfig().Namespace
	}
	return &local, nil
}

// Save writes the configuration, creating the data dir if needed
func (s *LocalConfigStore) Save(ctx context.Context, local *config.LocalConfig) error {
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(local, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(s.configPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GetPath returns the path to the config file
func (s *LocalConfigStore) GetPath() string {
	return s.configPath
}

var _ usecase.LocalConfigStore = (*LocalConfigStore)(nil)
