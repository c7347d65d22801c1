package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
)

// DeployContract is the deploy capability behind Environment.Deploy: it
// resolves the artifact, reuses an identical existing deployment, or signs,
// submits and records a new contract-creation transaction.
type DeployContract struct {
	artifacts   ArtifactRepository
	deployments DeploymentRepository
	accounts    AccountResolver
	chain       Blockchain
	progress    ProgressSink
	log         *slog.Logger
	now         func() time.Time
}

// NewDeployContract creates a new deploy contract use case
func NewDeployContract(
	artifacts ArtifactRepository,
	deployments DeploymentRepository,
	accounts AccountResolver,
	chain Blockchain,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		artifacts:   artifacts,
		deployments: deployments,
		accounts:    accounts,
		chain:       chain,
		progress:    progress,
		log:         log,
		now:         time.Now,
	}
}

// DeployContractParams contains parameters for a single deployment
type DeployContractParams struct {
	Network *config.Network
	Name    string
	Options DeployOptions
	Tags    []string // tags of the procedure requesting the deployment
}

// Execute deploys (or reuses) the named contract
func (uc *DeployContract) Execute(ctx context.Context, params DeployContractParams) (*DeployResult, error) {
	if params.Network == nil {
		return nil, domain.ErrNoNetwork
	}
	opts := params.Options

	contractName := opts.Contract
	if contractName == "" {
		contractName = params.Name
	}

	artifact, err := uc.artifacts.GetArtifact(ctx, contractName)
	if err != nil {
		return nil, err
	}
	if len(artifact.Bytecode) == 0 {
		return nil, fmt.Errorf("artifact %s has no creation bytecode (abstract contract or interface?)", contractName)
	}

	args, err := CoerceConstructorArgs(artifact.ABI.Constructor.Inputs, opts.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s constructor: %w", params.Name, err)
	}

	existing, err := uc.deployments.GetDeployment(ctx, params.Network.Name, params.Name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to read deployment %s: %w", params.Name, err)
	}
	if existing != nil && (opts.SkipIfAlreadyDeployed || sameDeployment(existing, artifact, opts.Args)) {
		// A record only counts if the chain still has code there (devnets
		// restart with the same chain ID)
		exists, reason, err := uc.chain.CheckDeploymentExists(ctx, existing.Address)
		if err != nil {
			return nil, fmt.Errorf("failed to check deployment %s at %s: %w", params.Name, existing.Address, err)
		}
		if exists {
			uc.log.Debug("reusing deployment", "name", params.Name, "address", existing.Address)
			if opts.Log {
				uc.progress.Info(fmt.Sprintf("reusing %q at %s", params.Name, existing.Address))
			}
			return &DeployResult{
				Address:    common.HexToAddress(existing.Address),
				Deployment: existing,
				Newly:      false,
			}, nil
		}
		uc.log.Debug("stale deployment record, redeploying", "name", params.Name, "address", existing.Address, "reason", reason)
	}

	key, err := uc.accounts.Signer(ctx, opts.From)
	if err != nil {
		return nil, err
	}

	confirmations := opts.WaitConfirmations
	if confirmations == 0 {
		confirmations = 1
	}

	uc.log.Debug("deploying contract", "name", params.Name, "artifact", artifact.Path, "from", opts.From.Hex(), "confirmations", confirmations)
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "deploying",
		Message: fmt.Sprintf("Deploying %s", params.Name),
		Spinner: true,
	})

	created, err := uc.chain.DeployContract(ctx, ContractCreation{
		Name:          params.Name,
		From:          opts.From,
		Key:           key,
		ABI:           artifact.ABI,
		Bytecode:      artifact.Bytecode,
		Args:          args,
		Confirmations: confirmations,
	})
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "deployed"})
	if err != nil {
		return nil, err
	}

	numDeployments := 1
	if existing != nil {
		numDeployments = existing.NumDeployments + 1
	}

	receipt := created.Receipt
	deployment := &models.Deployment{
		Name:             params.Name,
		ContractName:     contractName,
		Address:          created.Address.Hex(),
		ABI:              artifact.RawABI,
		TransactionHash:  created.TransactionHash.Hex(),
		Receipt:          &receipt,
		Args:             opts.Args,
		Bytecode:         hexutil.Encode(artifact.Bytecode),
		DeployedBytecode: hexutil.Encode(artifact.DeployedBytecode),
		NumDeployments:   numDeployments,
		Network:          params.Network.Name,
		ChainID:          params.Network.ChainID,
		Deployer:         opts.From.Hex(),
		Tags:             params.Tags,
		CreatedAt:        uc.now().UTC(),
	}
	if deployment.Args == nil {
		deployment.Args = []any{}
	}

	if err := uc.deployments.SaveDeployment(ctx, deployment); err != nil {
		return nil, fmt.Errorf("deployed %s at %s but failed to save deployment: %w", params.Name, deployment.Address, err)
	}

	if opts.Log {
		uc.progress.Info(fmt.Sprintf("deploying %q (tx: %s)...: deployed at %s with %d gas",
			params.Name, deployment.TransactionHash, deployment.Address, receipt.GasUsed))
	}

	return &DeployResult{
		Address:    created.Address,
		Deployment: deployment,
		Newly:      true,
	}, nil
}

// sameDeployment reports whether a record was produced from the same
// creation bytecode and constructor arguments
func sameDeployment(existing *models.Deployment, artifact *models.Artifact, args []any) bool {
	if existing.Bytecode != hexutil.Encode(artifact.Bytecode) {
		return false
	}
	return argsEqual(existing.Args, args)
}

// argsEqual compares argument lists through their JSON form, which is how
// they are persisted
func argsEqual(a, b []any) bool {
	if a == nil {
		a = []any{}
	}
	if b == nil {
		b = []any{}
	}
	ja, err := json.Marshal(a)
	if err != nil {
		return false
	}
	jb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}
