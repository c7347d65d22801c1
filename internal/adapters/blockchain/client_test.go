package blockchain

import (
	"context"
	"crypto/ecdsa"
	"io"
	"log/slog"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// init code that returns a single STOP byte as runtime code
var stopContract = common.FromHex("0x6001600c60003960016000f300")

const bondABI = `[{"type":"constructor","inputs":[{"name":"bond","type":"address"}],"stateMutability":"nonpayable"}]`

type simChain struct {
	sim    *simulated.Backend
	client *Client
	key    *ecdsa.PrivateKey
	from   common.Address
}

func newSimChain(t *testing.T) *simChain {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)

	sim := simulated.NewBackend(types.GenesisAlloc{
		from: {Balance: new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))},
	})
	t.Cleanup(func() { _ = sim.Close() })

	dial := func(context.Context, string) (Backend, error) { return sim.Client(), nil }
	client := NewClientWithDialer(dial, 10*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return &simChain{sim: sim, client: client, key: key, from: from}
}

// deploy runs DeployContract while mining blocks until it returns
func (s *simChain) deploy(t *testing.T, creation usecase.ContractCreation) (*usecase.CreationResult, error) {
	t.Helper()
	type outcome struct {
		res *usecase.CreationResult
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := s.client.DeployContract(context.Background(), creation)
		done <- outcome{res, err}
	}()

	timeout := time.After(30 * time.Second)
	for {
		select {
		case o := <-done:
			return o.res, o.err
		case <-timeout:
			t.Fatal("deployment did not complete")
		case <-time.After(20 * time.Millisecond):
			s.sim.Commit()
		}
	}
}

func (s *simChain) creation(t *testing.T, bytecode []byte, confirmations uint64) usecase.ContractCreation {
	parsed, err := abi.JSON(strings.NewReader(bondABI))
	require.NoError(t, err)
	return usecase.ContractCreation{
		Name:          "Frappucino",
		From:          s.from,
		Key:           s.key,
		ABI:           parsed,
		Bytecode:      bytecode,
		Args:          []any{common.HexToAddress("0x5d3DD9f67618b1500f3a03D66921A67dAe09C298")},
		Confirmations: confirmations,
	}
}

func TestClient_DeployContract(t *testing.T) {
	ctx := context.Background()
	s := newSimChain(t)

	chainID, err := s.client.Connect(ctx, &config.Network{Name: "simulated", RPCURL: "simulated"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1337), chainID)

	t.Run("deploys and waits for confirmations", func(t *testing.T) {
		res, err := s.deploy(t, s.creation(t, stopContract, 3))
		require.NoError(t, err)

		assert.Equal(t, crypto.CreateAddress(s.from, 0), res.Address)
		assert.Equal(t, uint64(1), res.Receipt.Status)
		assert.Greater(t, res.Receipt.GasUsed, uint64(21000))
		assert.GreaterOrEqual(t, res.Receipt.Confirmations, uint64(3))
		assert.Equal(t, s.from.Hex(), res.Receipt.From)

		head, err := s.sim.Client().BlockNumber(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, head, res.Receipt.BlockNumber+2)

		exists, reason, err := s.client.CheckDeploymentExists(ctx, res.Address.Hex())
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Empty(t, reason)
	})

	t.Run("empty runtime code is rejected", func(t *testing.T) {
		_, err := s.deploy(t, s.creation(t, []byte{0x00}, 1))
		assert.ErrorIs(t, err, domain.ErrDeploymentReverted)
	})

	t.Run("key must match sender", func(t *testing.T) {
		c := s.creation(t, stopContract, 1)
		c.From = common.HexToAddress("0x1111111111111111111111111111111111111111")
		_, err := s.client.DeployContract(ctx, c)
		assert.ErrorIs(t, err, domain.ErrCannotSign)
	})

	t.Run("missing code", func(t *testing.T) {
		exists, reason, err := s.client.CheckDeploymentExists(ctx, "0x2222222222222222222222222222222222222222")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Equal(t, "no code at address", reason)
	})
}

func TestClient_Connect(t *testing.T) {
	ctx := context.Background()

	t.Run("chain id mismatch", func(t *testing.T) {
		s := newSimChain(t)
		_, err := s.client.Connect(ctx, &config.Network{Name: "mainnet", RPCURL: "simulated", ChainID: 1})
		assert.ErrorContains(t, err, "chain ID mismatch: expected 1, got 1337")
	})

	t.Run("fetch chain id", func(t *testing.T) {
		s := newSimChain(t)
		id, err := s.client.FetchChainID(ctx, "simulated")
		require.NoError(t, err)
		assert.Equal(t, uint64(1337), id)
	})

	t.Run("reconnecting to a shared backend keeps it open", func(t *testing.T) {
		s := newSimChain(t)
		network := &config.Network{Name: "simulated", RPCURL: "simulated"}
		_, err := s.client.Connect(ctx, network)
		require.NoError(t, err)

		_, err = s.client.Connect(ctx, network)
		require.NoError(t, err)
		_, err = s.client.FetchChainID(ctx, "simulated")
		require.NoError(t, err)
		_, err = s.client.Connect(ctx, &config.Network{Name: "mainnet", RPCURL: "simulated", ChainID: 1})
		require.Error(t, err)

		exists, reason, err := s.client.CheckDeploymentExists(ctx, "0x2222222222222222222222222222222222222222")
		require.NoError(t, err)
		assert.False(t, exists)
		assert.Equal(t, "no code at address", reason)

		_, err = s.sim.Client().BlockNumber(ctx)
		assert.NoError(t, err)
	})

	t.Run("not connected", func(t *testing.T) {
		c := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)))
		_, err := c.DeployContract(ctx, usecase.ContractCreation{})
		assert.ErrorContains(t, err, "not connected")
		_, _, err = c.CheckDeploymentExists(ctx, "0x2222222222222222222222222222222222222222")
		assert.ErrorContains(t, err, "not connected")
	})
}
