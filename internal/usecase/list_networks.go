package usecase

import (
	"context"
	"time"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	RPCURL  string
	ChainID uint64
	Error   error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver NetworkResolver
	chain    Blockchain
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, chain Blockchain) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		chain:    chain,
	}
}

// Run lists configured networks, querying each endpoint for its chain ID
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	names := uc.resolver.Names()

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{Name: name}

		network, err := uc.resolver.Resolve(name)
		if err != nil {
			status.Error = err
			networks = append(networks, status)
			continue
		}
		status.RPCURL = network.RPCURL

		checkCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		status.ChainID, status.Error = uc.chain.FetchChainID(checkCtx, network.RPCURL)
		cancel()

		networks = append(networks, status)
	}

	return &ListNetworksResult{Networks: networks}, nil
}
