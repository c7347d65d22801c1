// Package procedures holds the deploy procedures shipped with barista.
package procedures

import (
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// NewRegistry registers every procedure, parameterised from barista.toml
func NewRegistry(cfg *config.RuntimeConfig) (*usecase.ProcedureRegistry, error) {
	var params map[string]config.ProcedureConfig
	if cfg.BaristaConfig != nil {
		params = cfg.BaristaConfig.Procedures
	}

	return usecase.NewProcedureRegistry(
		NewFrappucino(params[FrappucinoName]),
	)
}
