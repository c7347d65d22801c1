package procedures

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// FrappucinoName is both the procedure name and the contract it deploys
const FrappucinoName = "Frappucino"

// DefaultBondAddress is the bond contract Frappucino is bound to unless
// [procedures.Frappucino] or --bond-address says otherwise
const DefaultBondAddress = "0x5d3DD9f67618b1500f3a03D66921A67dAe09C298"

// NewFrappucino deploys the Frappucino contract from the "deployer" named
// account, passing the bond contract address as its only constructor argument.
func NewFrappucino(cfg config.ProcedureConfig) *usecase.DeployProcedure {
	return &usecase.DeployProcedure{
		Name: FrappucinoName,
		Tags: []string{FrappucinoName},
		Run: func(ctx context.Context, env usecase.Environment) error {
			accounts, err := env.NamedAccounts(ctx)
			if err != nil {
				return err
			}
			deployer, ok := accounts["deployer"]
			if !ok {
				return fmt.Errorf("%w: deployer (add it to [namespace.<ns>.senders] in barista.toml)", domain.ErrUnknownRole)
			}

			bond, err := bondAddress(ctx, env, cfg)
			if err != nil {
				return err
			}

			env.Logf("Deploying Frappucino with Bond Contract: %s...", bond)

			result, err := env.Deploy(ctx, FrappucinoName, usecase.DeployOptions{
				From:              deployer,
				Args:              []any{bond},
				Log:               true,
				WaitConfirmations: 1,
			})
			if err != nil {
				return err
			}

			env.Logf("✅ Frappucino deployed to: %s", result.Address.Hex())
			return nil
		},
	}
}

// bondAddress picks the bond contract: a recorded deployment when
// bond_deployment is set, else bond_address, else the default
func bondAddress(ctx context.Context, env usecase.Environment, cfg config.ProcedureConfig) (string, error) {
	if cfg.BondDeployment != "" {
		dep, err := env.Get(ctx, cfg.BondDeployment)
		if err != nil {
			return "", fmt.Errorf("bond deployment %s: %w", cfg.BondDeployment, err)
		}
		return dep.Address, nil
	}
	if cfg.BondAddress != "" {
		return cfg.BondAddress, nil
	}
	return DefaultBondAddress, nil
}
