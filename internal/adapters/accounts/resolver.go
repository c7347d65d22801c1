package accounts

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	internalconfig "github.com/trebuchet-org/barista/internal/config"
	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// Resolver maps the roles of the active namespace to accounts from barista.toml
type Resolver struct {
	cfg       *config.BaristaFileConfig
	namespace string
	warn      io.Writer
	log       *slog.Logger

	once     sync.Once
	accounts []usecase.NamedAccount
	keys     map[common.Address]*ecdsa.PrivateKey
	err      error
}

// NewResolver creates a resolver for the configured namespace
func NewResolver(cfg *config.RuntimeConfig, log *slog.Logger) *Resolver {
	return &Resolver{
		cfg:       cfg.BaristaConfig,
		namespace: cfg.Namespace,
		warn:      os.Stderr,
		log:       log,
	}
}

// NamedAccounts returns role → address for the namespace
func (r *Resolver) NamedAccounts(ctx context.Context) (map[string]common.Address, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	named := make(map[string]common.Address, len(r.accounts))
	for _, a := range r.accounts {
		named[a.Role] = a.Address
	}
	return named, nil
}

// ListAccounts returns the resolved roles sorted by role name
func (r *Resolver) ListAccounts(ctx context.Context) ([]usecase.NamedAccount, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	return append([]usecase.NamedAccount(nil), r.accounts...), nil
}

// Signer returns the private key of an account configured with one
func (r *Resolver) Signer(ctx context.Context, address common.Address) (*ecdsa.PrivateKey, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	if key, ok := r.keys[address]; ok {
		return key, nil
	}
	for _, a := range r.accounts {
		if a.Address == address {
			return nil, fmt.Errorf("%w: account %s (%s) is address-only", domain.ErrCannotSign, a.Account, address.Hex())
		}
	}
	return nil, fmt.Errorf("%w: %s is not a configured account", domain.ErrCannotSign, address.Hex())
}

func (r *Resolver) load() error {
	r.once.Do(func() {
		r.err = r.resolve()
	})
	return r.err
}

func (r *Resolver) resolve() error {
	resolved, err := internalconfig.ResolveNamespace(r.cfg, r.namespace, r.warn)
	if err != nil {
		return err
	}

	r.keys = make(map[common.Address]*ecdsa.PrivateKey)
	for role, acct := range resolved.Accounts {
		accountName := resolved.Roles[role]
		address, key, err := parseAccount(acct)
		if err != nil {
			return fmt.Errorf("account %s (role %s): %w", accountName, role, err)
		}
		if key != nil {
			r.keys[address] = key
		}
		r.accounts = append(r.accounts, usecase.NamedAccount{
			Role:    role,
			Account: accountName,
			Address: address,
			Type:    accountType(acct),
			CanSign: key != nil,
		})
		r.log.Debug("resolved named account", "namespace", r.namespace, "role", role, "account", accountName, "address", address.Hex())
	}
	sort.Slice(r.accounts, func(i, j int) bool { return r.accounts[i].Role < r.accounts[j].Role })
	return nil
}

func accountType(acct config.AccountConfig) config.AccountType {
	if acct.Type != "" {
		return acct.Type
	}
	if acct.PrivateKey != "" {
		return config.AccountTypePrivateKey
	}
	return config.AccountTypeAddress
}

// parseAccount returns the account's address and, for private_key accounts, its key
func parseAccount(acct config.AccountConfig) (common.Address, *ecdsa.PrivateKey, error) {
	switch accountType(acct) {
	case config.AccountTypePrivateKey:
		if acct.PrivateKey == "" {
			return common.Address{}, nil, fmt.Errorf("private_key is empty (is the environment variable set?)")
		}
		key, err := crypto.HexToECDSA(strings.TrimPrefix(acct.PrivateKey, "0x"))
		if err != nil {
			return common.Address{}, nil, fmt.Errorf("invalid private_key")
		}
		address := crypto.PubkeyToAddress(key.PublicKey)
		if acct.Address != "" && !strings.EqualFold(acct.Address, address.Hex()) {
			return common.Address{}, nil, fmt.Errorf("address %s does not match private_key (derived %s)", acct.Address, address.Hex())
		}
		return address, key, nil
	case config.AccountTypeAddress:
		if !common.IsHexAddress(acct.Address) {
			return common.Address{}, nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, acct.Address)
		}
		return common.HexToAddress(acct.Address), nil, nil
	default:
		return common.Address{}, nil, fmt.Errorf("unknown account type %q (expected private_key or address)", acct.Type)
	}
}

var _ usecase.AccountResolver = (*Resolver)(nil)
