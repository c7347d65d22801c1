package usecase

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
)

// DeploymentRepository handles persistence of deployment records
type DeploymentRepository interface {
	GetDeployment(ctx context.Context, network, name string) (*models.Deployment, error)
	ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error)
	SaveDeployment(ctx context.Context, deployment *models.Deployment) error
	// EnsureChainID records the chain ID of a network directory, or fails with
	// domain.ErrNetworkMismatch when a different one is already recorded
	EnsureChainID(ctx context.Context, network string, chainID uint64) error
}

// ArtifactRepository provides access to compiled contracts
type ArtifactRepository interface {
	GetArtifact(ctx context.Context, name string) (*models.Artifact, error)
}

// NamedAccount is a resolved role → account mapping
type NamedAccount struct {
	Role    string
	Account string // account name in barista.toml
	Address common.Address
	Type    config.AccountType
	CanSign bool
}

// AccountResolver resolves named accounts for the active namespace
type AccountResolver interface {
	NamedAccounts(ctx context.Context) (map[string]common.Address, error)
	ListAccounts(ctx context.Context) ([]NamedAccount, error)
	Signer(ctx context.Context, address common.Address) (*ecdsa.PrivateKey, error)
}

// ContractCreation describes a contract-creation transaction
type ContractCreation struct {
	Name          string
	From          common.Address
	Key           *ecdsa.PrivateKey
	ABI           abi.ABI
	Bytecode      []byte
	Args          []any // already coerced to the constructor's ABI types
	Confirmations uint64
}

// CreationResult is returned by Blockchain.DeployContract once the
// requested confirmations have been reached
type CreationResult struct {
	Address         common.Address
	TransactionHash common.Hash
	Receipt         models.Receipt
}

// Blockchain submits transactions and reads chain state
type Blockchain interface {
	Connect(ctx context.Context, network *config.Network) (chainID uint64, err error)
	DeployContract(ctx context.Context, creation ContractCreation) (*CreationResult, error)
	CheckDeploymentExists(ctx context.Context, address string) (exists bool, reason string, err error)
	FetchChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	Names() []string
	Resolve(networkName string) (*config.Network, error)
}

// Confirmer asks the user to confirm an action
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events and console output
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// LocalConfigStore reads and writes the local defaults file
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, local *config.LocalConfig) error
	GetPath() string
}
