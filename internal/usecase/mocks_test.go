package usecase_test

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// MockDeploymentRepository is a mock implementation of DeploymentRepository
type MockDeploymentRepository struct {
	mock.Mock
}

func (m *MockDeploymentRepository) GetDeployment(ctx context.Context, network, name string) (*models.Deployment, error) {
	args := m.Called(ctx, network, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

func (m *MockDeploymentRepository) ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deployment), args.Error(1)
}

func (m *MockDeploymentRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	args := m.Called(ctx, deployment)
	return args.Error(0)
}

func (m *MockDeploymentRepository) EnsureChainID(ctx context.Context, network string, chainID uint64) error {
	args := m.Called(ctx, network, chainID)
	return args.Error(0)
}

// memoryRepository keeps deployment records in memory
type memoryRepository struct {
	records  map[string]*models.Deployment
	chainIDs map[string]uint64
	saveErr  error
	saved    int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		records:  make(map[string]*models.Deployment),
		chainIDs: make(map[string]uint64),
	}
}

func (r *memoryRepository) GetDeployment(ctx context.Context, network, name string) (*models.Deployment, error) {
	dep, ok := r.records[network+"/"+name]
	if !ok {
		return nil, fmt.Errorf("deployment %s/%s: %w", network, name, domain.ErrNotFound)
	}
	return dep, nil
}

func (r *memoryRepository) ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error) {
	var out []*models.Deployment
	for _, dep := range r.records {
		if filter.Network != "" && dep.Network != filter.Network {
			continue
		}
		if filter.ContractName != "" && dep.ContractName != filter.ContractName {
			continue
		}
		if filter.Tag != "" && !dep.HasTag(filter.Tag) {
			continue
		}
		out = append(out, dep)
	}
	return out, nil
}

func (r *memoryRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved++
	r.records[deployment.Network+"/"+deployment.Name] = deployment
	return nil
}

func (r *memoryRepository) EnsureChainID(ctx context.Context, network string, chainID uint64) error {
	if existing, ok := r.chainIDs[network]; ok && existing != chainID {
		return fmt.Errorf("%s is chain %d, connected to %d: %w", network, existing, chainID, domain.ErrNetworkMismatch)
	}
	r.chainIDs[network] = chainID
	return nil
}

// fakeArtifacts serves artifacts by name
type fakeArtifacts map[string]*models.Artifact

func (f fakeArtifacts) GetArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	a, ok := f[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrContractNotFound, name)
	}
	return a, nil
}

const bondConstructorABI = `[{"type":"constructor","inputs":[{"name":"bond","type":"address","internalType":"address"}],"stateMutability":"nonpayable"}]`

// newArtifact builds an artifact whose constructor takes a single address
func newArtifact(name string, bytecode []byte) *models.Artifact {
	parsed, err := abi.JSON(strings.NewReader(bondConstructorABI))
	if err != nil {
		panic(err)
	}
	return &models.Artifact{
		Name:             name,
		Path:             "out/" + name + ".sol/" + name + ".json",
		RawABI:           []byte(bondConstructorABI),
		ABI:              parsed,
		Bytecode:         bytecode,
		DeployedBytecode: []byte{0x00},
	}
}

// fakeAccounts resolves roles from a fixed map
type fakeAccounts struct {
	roles map[string]common.Address
	keys  map[common.Address]*ecdsa.PrivateKey
	err   error
}

func newFakeAccounts(roles ...string) *fakeAccounts {
	f := &fakeAccounts{
		roles: make(map[string]common.Address),
		keys:  make(map[common.Address]*ecdsa.PrivateKey),
	}
	for _, role := range roles {
		key, err := crypto.GenerateKey()
		if err != nil {
			panic(err)
		}
		addr := crypto.PubkeyToAddress(key.PublicKey)
		f.roles[role] = addr
		f.keys[addr] = key
	}
	return f
}

func (f *fakeAccounts) NamedAccounts(ctx context.Context) (map[string]common.Address, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roles, nil
}

func (f *fakeAccounts) ListAccounts(ctx context.Context) ([]usecase.NamedAccount, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []usecase.NamedAccount
	for role, addr := range f.roles {
		_, canSign := f.keys[addr]
		out = append(out, usecase.NamedAccount{
			Role:    role,
			Account: role,
			Address: addr,
			Type:    config.AccountTypePrivateKey,
			CanSign: canSign,
		})
	}
	return out, nil
}

func (f *fakeAccounts) Signer(ctx context.Context, address common.Address) (*ecdsa.PrivateKey, error) {
	key, ok := f.keys[address]
	if !ok {
		return nil, fmt.Errorf("%s: %w", address.Hex(), domain.ErrCannotSign)
	}
	return key, nil
}

// fakeChain records contract creations and hands out sequential addresses
type fakeChain struct {
	chainID    uint64
	connectErr error
	deployErr  error
	creations  []usecase.ContractCreation
	live       map[string]bool
	rpcChainID map[string]uint64
}

func newFakeChain(chainID uint64) *fakeChain {
	return &fakeChain{chainID: chainID, live: make(map[string]bool)}
}

func (f *fakeChain) Connect(ctx context.Context, network *config.Network) (uint64, error) {
	if f.connectErr != nil {
		return 0, f.connectErr
	}
	return f.chainID, nil
}

func (f *fakeChain) DeployContract(ctx context.Context, creation usecase.ContractCreation) (*usecase.CreationResult, error) {
	f.creations = append(f.creations, creation)
	if f.deployErr != nil {
		return nil, f.deployErr
	}
	n := int64(len(f.creations))
	addr := common.BigToAddress(big.NewInt(0x1000 + n))
	f.live[addr.Hex()] = true
	return &usecase.CreationResult{
		Address:         addr,
		TransactionHash: common.BigToHash(big.NewInt(0xabc0 + n)),
		Receipt: models.Receipt{
			From:            creation.From.Hex(),
			ContractAddress: addr.Hex(),
			BlockNumber:     uint64(n),
			GasUsed:         123456,
			Status:          1,
			Confirmations:   creation.Confirmations,
		},
	}, nil
}

func (f *fakeChain) CheckDeploymentExists(ctx context.Context, address string) (bool, string, error) {
	if f.live[address] {
		return true, "", nil
	}
	return false, "no code at address", nil
}

func (f *fakeChain) FetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	if id, ok := f.rpcChainID[rpcURL]; ok {
		return id, nil
	}
	return 0, fmt.Errorf("dial %s: connection refused", rpcURL)
}

// recordingSink records progress events and console output
type recordingSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (s *recordingSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	s.events = append(s.events, event)
}

func (s *recordingSink) Info(message string) {
	s.infos = append(s.infos, message)
}

func (s *recordingSink) Error(message string) {
	s.errors = append(s.errors, message)
}

// fakeConfirmer answers every confirmation with answer
type fakeConfirmer struct {
	answer bool
	asked  []string
}

func (f *fakeConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	f.asked = append(f.asked, prompt)
	return f.answer, nil
}
