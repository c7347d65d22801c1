package procedures

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
	"github.com/trebuchet-org/barista/internal/usecase"
)

type deployCall struct {
	name string
	opts usecase.DeployOptions
}

// fakeEnv records what a procedure asks of its environment
type fakeEnv struct {
	accounts    map[string]common.Address
	accountsErr error
	deployed    common.Address
	deployErr   error
	records     map[string]*models.Deployment

	calls []deployCall
	logs  []string
}

func (e *fakeEnv) Network() *config.Network {
	return &config.Network{Name: "localhost", ChainID: 31337}
}

func (e *fakeEnv) NamedAccounts(context.Context) (map[string]common.Address, error) {
	return e.accounts, e.accountsErr
}

func (e *fakeEnv) Deploy(_ context.Context, name string, opts usecase.DeployOptions) (*usecase.DeployResult, error) {
	e.calls = append(e.calls, deployCall{name: name, opts: opts})
	if e.deployErr != nil {
		return nil, e.deployErr
	}
	return &usecase.DeployResult{Address: e.deployed, Newly: true}, nil
}

func (e *fakeEnv) Get(_ context.Context, name string) (*models.Deployment, error) {
	dep, ok := e.records[name]
	if !ok {
		return nil, fmt.Errorf("deployment localhost/%s: %w", name, domain.ErrNotFound)
	}
	return dep, nil
}

func (e *fakeEnv) Logf(format string, args ...any) {
	e.logs = append(e.logs, fmt.Sprintf(format, args...))
}

var (
	deployerAddr = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	deployedAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
)

func newEnv() *fakeEnv {
	return &fakeEnv{
		accounts: map[string]common.Address{
			"deployer": deployerAddr,
			"admin":    common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"),
		},
		deployed: deployedAddr,
	}
}

func TestFrappucino_Deploys(t *testing.T) {
	env := newEnv()
	p := NewFrappucino(config.ProcedureConfig{})

	require.NoError(t, p.Run(context.Background(), env))

	require.Len(t, env.calls, 1)
	call := env.calls[0]
	assert.Equal(t, "Frappucino", call.name)
	assert.Equal(t, []any{DefaultBondAddress}, call.opts.Args)
	assert.Equal(t, deployerAddr, call.opts.From)
	assert.Equal(t, uint64(1), call.opts.WaitConfirmations)
	assert.True(t, call.opts.Log)
	assert.Empty(t, call.opts.Contract)
	assert.False(t, call.opts.SkipIfAlreadyDeployed)

	assert.Equal(t, []string{
		"Deploying Frappucino with Bond Contract: 0x5d3DD9f67618b1500f3a03D66921A67dAe09C298...",
		"✅ Frappucino deployed to: " + deployedAddr.Hex(),
	}, env.logs)
}

func TestFrappucino_Tags(t *testing.T) {
	p := NewFrappucino(config.ProcedureConfig{})
	assert.Equal(t, "Frappucino", p.Name)
	assert.Equal(t, []string{"Frappucino"}, p.Tags)
	assert.Empty(t, p.Dependencies)
}

func TestFrappucino_BondAddress(t *testing.T) {
	t.Run("configured address is passed through unvalidated", func(t *testing.T) {
		env := newEnv()
		p := NewFrappucino(config.ProcedureConfig{BondAddress: "not-an-address"})

		require.NoError(t, p.Run(context.Background(), env))
		assert.Equal(t, []any{"not-an-address"}, env.calls[0].opts.Args)
		assert.Contains(t, env.logs[0], "Bond Contract: not-an-address...")
	})

	t.Run("recorded bond deployment", func(t *testing.T) {
		env := newEnv()
		env.records = map[string]*models.Deployment{
			"BondContract": {Name: "BondContract", Address: "0x1111111111111111111111111111111111111111"},
		}
		p := NewFrappucino(config.ProcedureConfig{BondDeployment: "BondContract", BondAddress: DefaultBondAddress})

		require.NoError(t, p.Run(context.Background(), env))
		assert.Equal(t, []any{"0x1111111111111111111111111111111111111111"}, env.calls[0].opts.Args)
	})

	t.Run("missing bond deployment", func(t *testing.T) {
		env := newEnv()
		p := NewFrappucino(config.ProcedureConfig{BondDeployment: "BondContract"})

		err := p.Run(context.Background(), env)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, env.calls)
	})
}

func TestFrappucino_DeployFailure(t *testing.T) {
	env := newEnv()
	rejected := errors.New("insufficient funds for gas * price + value")
	env.deployErr = rejected
	p := NewFrappucino(config.ProcedureConfig{})

	err := p.Run(context.Background(), env)

	assert.Same(t, rejected, err)
	assert.Len(t, env.calls, 1, "no retry")
	for _, line := range env.logs {
		assert.False(t, strings.Contains(line, "deployed to"), "no success message on failure")
	}
}

func TestFrappucino_AccountFailure(t *testing.T) {
	t.Run("resolver error is returned as is", func(t *testing.T) {
		env := newEnv()
		resolveErr := errors.New("namespace production.eu: unknown account \"ledger\"")
		env.accountsErr = resolveErr

		err := NewFrappucino(config.ProcedureConfig{}).Run(context.Background(), env)
		assert.Same(t, resolveErr, err)
		assert.Empty(t, env.calls)
		assert.Empty(t, env.logs)
	})

	t.Run("no deployer role", func(t *testing.T) {
		env := newEnv()
		delete(env.accounts, "deployer")

		err := NewFrappucino(config.ProcedureConfig{}).Run(context.Background(), env)
		assert.ErrorIs(t, err, domain.ErrUnknownRole)
		assert.Empty(t, env.calls)
	})
}

func TestNewRegistry(t *testing.T) {
	cfg := &config.RuntimeConfig{
		BaristaConfig: &config.BaristaFileConfig{
			Procedures: map[string]config.ProcedureConfig{
				"Frappucino": {BondAddress: "0x1111111111111111111111111111111111111111"},
			},
		},
	}
	registry, err := NewRegistry(cfg)
	require.NoError(t, err)

	selected, err := registry.Select([]string{"Frappucino"})
	require.NoError(t, err)
	require.Len(t, selected, 1)

	env := newEnv()
	require.NoError(t, selected[0].Run(context.Background(), env))
	assert.Equal(t, []any{"0x1111111111111111111111111111111111111111"}, env.calls[0].opts.Args)

	_, err = NewRegistry(&config.RuntimeConfig{})
	assert.NoError(t, err)
}
