package usecase

import (
	"context"
	"sort"

	"github.com/trebuchet-org/barista/internal/domain/config"
)

// ListAccounts lists the named accounts of the active namespace
type ListAccounts struct {
	config   *config.RuntimeConfig
	accounts AccountResolver
}

// NewListAccounts creates a new ListAccounts use case
func NewListAccounts(cfg *config.RuntimeConfig, accounts AccountResolver) *ListAccounts {
	return &ListAccounts{config: cfg, accounts: accounts}
}

// ListAccountsResult contains the resolved accounts
type ListAccountsResult struct {
	Namespace string
	Accounts  []NamedAccount
}

// Run executes the use case
func (uc *ListAccounts) Run(ctx context.Context) (*ListAccountsResult, error) {
	accounts, err := uc.accounts.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Role < accounts[j].Role })

	namespace := uc.config.Namespace
	if namespace == "" {
		namespace = "default"
	}
	return &ListAccountsResult{Namespace: namespace, Accounts: accounts}, nil
}
