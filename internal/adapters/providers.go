package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/barista/internal/adapters/accounts"
	"github.com/trebuchet-org/barista/internal/adapters/artifacts"
	"github.com/trebuchet-org/barista/internal/adapters/blockchain"
	"github.com/trebuchet-org/barista/internal/adapters/fs"
	"github.com/trebuchet-org/barista/internal/adapters/interactive"
	"github.com/trebuchet-org/barista/internal/adapters/progress"
	"github.com/trebuchet-org/barista/internal/adapters/repository/deployments"
	internalconfig "github.com/trebuchet-org/barista/internal/config"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// ProvideNetworkResolver resolves networks from foundry.toml
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *internalconfig.NetworkResolver {
	return internalconfig.NewNetworkResolver(cfg.FoundryConfig)
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	deployments.NewFileRepositoryFromConfig,
	wire.Bind(new(usecase.DeploymentRepository), new(*deployments.FileRepository)),

	artifacts.NewLoaderFromConfig,
	wire.Bind(new(usecase.ArtifactRepository), new(*artifacts.Loader)),

	fs.NewLocalConfigStore,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStore)),
)

// AccountsSet provides named account resolution
var AccountsSet = wire.NewSet(
	accounts.NewResolver,
	wire.Bind(new(usecase.AccountResolver), new(*accounts.Resolver)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmAdapter)),
	progress.NewProgressSink,
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	ProvideNetworkResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolver)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewClient,
	wire.Bind(new(usecase.Blockchain), new(*blockchain.Client)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	AccountsSet,
	InteractiveSet,
	ConfigSet,
	BlockchainSet,
)
