package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/usecase"
)

type memoryConfigStore struct {
	local *config.LocalConfig
}

func (s *memoryConfigStore) Exists() bool { return s.local != nil }

func (s *memoryConfigStore) Load(context.Context) (*config.LocalConfig, error) {
	if s.local == nil {
		return config.DefaultLocalConfig(), nil
	}
	c := *s.local
	return &c, nil
}

func (s *memoryConfigStore) Save(_ context.Context, local *config.LocalConfig) error {
	c := *local
	s.local = &c
	return nil
}

func (s *memoryConfigStore) GetPath() string { return "/project/.barista/config.local.json" }

func TestSetConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("namespace alias", func(t *testing.T) {
		store := &memoryConfigStore{}
		result, err := usecase.NewSetConfig(store).Run(ctx, usecase.SetConfigParams{Key: "NS", Value: "production"})
		require.NoError(t, err)
		assert.Equal(t, config.ConfigKeyNamespace, result.Key)
		assert.Equal(t, "production", store.local.Namespace)
	})

	t.Run("network keeps namespace", func(t *testing.T) {
		store := &memoryConfigStore{local: &config.LocalConfig{Namespace: "staging"}}
		_, err := usecase.NewSetConfig(store).Run(ctx, usecase.SetConfigParams{Key: "network", Value: "sepolia"})
		require.NoError(t, err)
		assert.Equal(t, config.LocalConfig{Namespace: "staging", Network: "sepolia"}, *store.local)
	})

	t.Run("unknown key", func(t *testing.T) {
		store := &memoryConfigStore{}
		_, err := usecase.NewSetConfig(store).Run(ctx, usecase.SetConfigParams{Key: "fork", Value: "x"})
		assert.ErrorContains(t, err, "unknown config key: fork")
		assert.ErrorContains(t, err, "namespace (ns), network")
		assert.Nil(t, store.local)
	})
}

func TestRemoveConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("requires existing file", func(t *testing.T) {
		_, err := usecase.NewRemoveConfig(&memoryConfigStore{}).Run(ctx, usecase.RemoveConfigParams{Key: "network"})
		assert.ErrorContains(t, err, "no config file found")
	})

	t.Run("namespace reverts to default", func(t *testing.T) {
		store := &memoryConfigStore{local: &config.LocalConfig{Namespace: "production", Network: "sepolia"}}
		result, err := usecase.NewRemoveConfig(store).Run(ctx, usecase.RemoveConfigParams{Key: "namespace"})
		require.NoError(t, err)
		assert.Equal(t, "production", result.RemovedValue)
		assert.Equal(t, "default", store.local.Namespace)
		assert.Equal(t, "sepolia", store.local.Network)
	})

	t.Run("network cleared", func(t *testing.T) {
		store := &memoryConfigStore{local: &config.LocalConfig{Namespace: "default", Network: "sepolia"}}
		result, err := usecase.NewRemoveConfig(store).Run(ctx, usecase.RemoveConfigParams{Key: "network"})
		require.NoError(t, err)
		assert.Equal(t, "sepolia", result.RemovedValue)
		assert.Empty(t, store.local.Network)
	})
}

func TestShowConfig(t *testing.T) {
	result, err := usecase.NewShowConfig(&memoryConfigStore{}).Run(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Exists)
	assert.Equal(t, "default", result.Config.Namespace)
	assert.Equal(t, "/project/.barista/config.local.json", result.ConfigPath)
}
