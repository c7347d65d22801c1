package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
)

// Environment is what a deploy procedure sees of the framework: named
// accounts, the deploy capability, previously recorded deployments and
// console output.
type Environment interface {
	Network() *config.Network
	NamedAccounts(ctx context.Context) (map[string]common.Address, error)
	Deploy(ctx context.Context, name string, opts DeployOptions) (*DeployResult, error)
	Get(ctx context.Context, name string) (*models.Deployment, error)
	Logf(format string, args ...any)
}

// DeployOptions configures a single contract deployment
type DeployOptions struct {
	From common.Address
	// Args are the constructor arguments. Strings are converted to the
	// constructor's ABI types (address, uintN, bool, bytes...).
	Args []any
	// Log prints the transaction hash, address and gas used
	Log bool
	// WaitConfirmations is the number of blocks, including the inclusion
	// block, to wait for before returning. Zero is treated as one.
	WaitConfirmations uint64
	// Contract selects the artifact when it differs from the deployment name
	Contract string
	// SkipIfAlreadyDeployed reuses any existing record of the same name,
	// even if bytecode or arguments changed
	SkipIfAlreadyDeployed bool
}

// DeployResult is returned by Environment.Deploy
type DeployResult struct {
	Address    common.Address
	Deployment *models.Deployment
	Newly      bool // false when an existing deployment was reused
}

// DeployFunc is the body of a deploy procedure
type DeployFunc func(ctx context.Context, env Environment) error

// DeployProcedure is a tagged, named unit of deployment work
type DeployProcedure struct {
	Name         string     `json:"name"`
	Tags         []string   `json:"tags"`
	Dependencies []string   `json:"dependencies,omitempty"` // tags that must run before this procedure
	Run          DeployFunc `json:"-"`
}
