package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/models"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// DeployContract signs and sends a contract-creation transaction, then
// waits for its receipt and the requested number of confirmations
func (c *Client) DeployContract(ctx context.Context, creation usecase.ContractCreation) (*usecase.CreationResult, error) {
	if c.backend == nil {
		return nil, fmt.Errorf("not connected to blockchain")
	}

	opts, err := bind.NewKeyedTransactorWithChainID(creation.Key, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	if opts.From != creation.From {
		return nil, fmt.Errorf("%w: key does not belong to %s", domain.ErrCannotSign, creation.From.Hex())
	}

	address, tx, _, err := bind.DeployContract(opts, creation.ABI, creation.Bytecode, c.backend, creation.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s creation transaction: %w", creation.Name, err)
	}
	c.log.Debug("creation transaction sent", "name", creation.Name, "tx", tx.Hash().Hex(), "address", address.Hex(), "nonce", tx.Nonce())

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s (tx %s): %w", creation.Name, tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: %s (tx %s, gas used %d)", domain.ErrDeploymentReverted, creation.Name, tx.Hash().Hex(), receipt.GasUsed)
	}

	confirmations, err := c.waitConfirmations(ctx, receipt.BlockNumber.Uint64(), creation.Confirmations)
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s confirmations: %w", creation.Name, err)
	}

	code, err := c.backend.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read code at %s: %w", address.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: no code at %s after deploying %s", domain.ErrDeploymentReverted, address.Hex(), creation.Name)
	}

	return &usecase.CreationResult{
		Address:         address,
		TransactionHash: tx.Hash(),
		Receipt: models.Receipt{
			From:            creation.From.Hex(),
			ContractAddress: address.Hex(),
			BlockNumber:     receipt.BlockNumber.Uint64(),
			BlockHash:       receipt.BlockHash.Hex(),
			GasUsed:         receipt.GasUsed,
			Status:          receipt.Status,
			Confirmations:   confirmations,
		},
	}, nil
}

// waitConfirmations blocks until want blocks, counting the inclusion block,
// exist on top of minedAt. It returns the confirmations observed.
func (c *Client) waitConfirmations(ctx context.Context, minedAt, want uint64) (uint64, error) {
	if want == 0 {
		want = 1
	}
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		head, err := c.backend.BlockNumber(ctx)
		if err != nil {
			return 0, err
		}
		if head >= minedAt {
			if got := head - minedAt + 1; got >= want {
				return got, nil
			}
		}
		c.log.Debug("waiting for confirmations", "mined_at", minedAt, "head", head, "want", want)

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-ticker.C:
		}
	}
}
