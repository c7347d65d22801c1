//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/barista/internal/adapters"
	internalconfig "github.com/trebuchet-org/barista/internal/config"
	"github.com/trebuchet-org/barista/internal/logging"
	"github.com/trebuchet-org/barista/internal/procedures"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		internalconfig.Provider,
		logging.LoggingSet,

		// Deploy procedures
		procedures.NewRegistry,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewExportDeployments,
		usecase.NewRunDeployments,
		usecase.NewListDeployments,
		usecase.NewShowDeployment,
		usecase.NewCheckDeployments,
		usecase.NewListProcedures,
		usecase.NewListAccounts,
		usecase.NewListNetworks,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil
}
