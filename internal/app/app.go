package app

import (
	"github.com/trebuchet-org/barista/internal/adapters/blockchain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	RunDeployments    *usecase.RunDeployments
	ListDeployments   *usecase.ListDeployments
	ShowDeployment    *usecase.ShowDeployment
	ExportDeployments *usecase.ExportDeployments
	CheckDeployments  *usecase.CheckDeployments
	ListProcedures    *usecase.ListProcedures
	ListAccounts      *usecase.ListAccounts
	ListNetworks      *usecase.ListNetworks
	ShowConfig        *usecase.ShowConfig
	SetConfig         *usecase.SetConfig
	RemoveConfig      *usecase.RemoveConfig

	// Adapters that hold connections
	Chain *blockchain.Client
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	runDeployments *usecase.RunDeployments,
	listDeployments *usecase.ListDeployments,
	showDeployment *usecase.ShowDeployment,
	exportDeployments *usecase.ExportDeployments,
	checkDeployments *usecase.CheckDeployments,
	listProcedures *usecase.ListProcedures,
	listAccounts *usecase.ListAccounts,
	listNetworks *usecase.ListNetworks,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
	chain *blockchain.Client,
) (*App, error) {
	return &App{
		Config:            cfg,
		RunDeployments:    runDeployments,
		ListDeployments:   listDeployments,
		ShowDeployment:    showDeployment,
		ExportDeployments: exportDeployments,
		CheckDeployments:  checkDeployments,
		ListProcedures:    listProcedures,
		ListAccounts:      listAccounts,
		ListNetworks:      listNetworks,
		ShowConfig:        showConfig,
		SetConfig:         setConfig,
		RemoveConfig:      removeConfig,
		Chain:             chain,
	}, nil
}

// Close releases the RPC connection, if one was opened
func (a *App) Close() {
	if a.Chain != nil {
		a.Chain.Close()
	}
}
