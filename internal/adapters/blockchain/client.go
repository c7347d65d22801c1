package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// Backend is the part of an RPC client the adapter uses. *ethclient.Client
// and go-ethereum's simulated client both satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// DialFunc opens a Backend for an RPC URL
type DialFunc func(ctx context.Context, rpcURL string) (Backend, error)

func dialEthclient(ctx context.Context, rpcURL string) (Backend, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Client implements usecase.Blockchain over JSON-RPC
type Client struct {
	dial         DialFunc
	backend      Backend
	chainID      *big.Int
	pollInterval time.Duration
	log          *slog.Logger
}

// NewClient creates a client that dials networks with ethclient
func NewClient(log *slog.Logger) *Client {
	return &Client{
		dial:         dialEthclient,
		pollInterval: 2 * time.Second,
		log:          log,
	}
}

// NewClientWithDialer creates a client using a custom dialer
func NewClientWithDialer(dial DialFunc, pollInterval time.Duration, log *slog.Logger) *Client {
	return &Client{dial: dial, pollInterval: pollInterval, log: log}
}

// Connect dials the network and returns its chain ID. A network with a
// configured chain ID must match the RPC's.
func (c *Client) Connect(ctx context.Context, network *config.Network) (uint64, error) {
	backend, err := c.dial(ctx, network.RPCURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		c.release(backend)
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if network.ChainID != 0 && network.ChainID != chainID.Uint64() {
		c.release(backend)
		return 0, fmt.Errorf("chain ID mismatch: expected %d, got %d", network.ChainID, chainID.Uint64())
	}

	if c.backend != backend {
		c.Close()
	}
	c.backend = backend
	c.chainID = chainID
	c.log.Debug("connected", "network", network.Name, "chain_id", chainID.Uint64())
	return chainID.Uint64(), nil
}

// FetchChainID queries an endpoint for its chain ID without keeping the connection
func (c *Client) FetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	backend, err := c.dial(ctx, rpcURL)
	if err != nil {
		return 0, err
	}
	defer c.release(backend)

	chainID, err := backend.ChainID(ctx)
	if err != nil {
		return 0, err
	}
	return chainID.Uint64(), nil
}

// Close releases the current connection
func (c *Client) Close() {
	if c.backend != nil {
		closeBackend(c.backend)
		c.backend = nil
	}
}

// release closes a dialed backend unless it is the one currently in use
func (c *Client) release(b Backend) {
	if b != c.backend {
		closeBackend(b)
	}
}

func closeBackend(b Backend) {
	if closer, ok := b.(interface{ Close() }); ok {
		closer.Close()
	}
}

var _ usecase.Blockchain = (*Client)(nil)
