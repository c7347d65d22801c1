package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trebuchet-org/barista/internal/domain/config"
)

// NetworkResolver resolves network names to configurations using
// the [rpc_endpoints] table of foundry.toml
type NetworkResolver struct {
	foundryConfig *config.FoundryConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(foundryConfig *config.FoundryConfig) *NetworkResolver {
	return &NetworkResolver{foundryConfig: foundryConfig}
}

// Resolve resolves a network name to its configuration. A raw RPC URL is
// accepted as well and named after its host. The chain ID is left at zero;
// it is read from the endpoint when a client connects.
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	if isRPCURL(networkName) {
		return &config.Network{
			Name:   hostName(networkName),
			RPCURL: networkName,
		}, nil
	}

	if r.foundryConfig == nil {
		return nil, fmt.Errorf("network '%s' not found: no foundry.toml loaded", networkName)
	}
	rpcURL, exists := r.foundryConfig.RpcEndpoints[networkName]
	if !exists {
		return nil, fmt.Errorf("network '%s' not found in foundry.toml [rpc_endpoints]", networkName)
	}
	if rpcURL == "" {
		return nil, fmt.Errorf("network '%s' has an empty RPC URL (unset environment variable?)", networkName)
	}

	network := &config.Network{
		Name:   networkName,
		RPCURL: rpcURL,
	}
	if es, ok := r.foundryConfig.Etherscan[networkName]; ok {
		network.ExplorerURL = es.URL
	}
	return network, nil
}

// Names returns the configured network names, sorted
func (r *NetworkResolver) Names() []string {
	if r.foundryConfig == nil {
		return nil
	}
	names := make([]string, 0, len(r.foundryConfig.RpcEndpoints))
	for name := range r.foundryConfig.RpcEndpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExplorerURL returns a block explorer for well known chains
func ExplorerURL(chainID uint64) string {
	switch chainID {
	case 1:
		return "https://etherscan.io"
	case 11155111:
		return "https://sepolia.etherscan.io"
	case 17000:
		return "https://holesky.etherscan.io"
	case 10:
		return "https://optimistic.etherscan.io"
	case 137:
		return "https://polygonscan.com"
	case 8453:
		return "https://basescan.org"
	case 42161:
		return "https://arbiscan.io"
	case 56:
		return "https://bscscan.com"
	default:
		return ""
	}
}

func isRPCURL(s string) bool {
	for _, prefix := range []string{"http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hostName(rpcURL string) string {
	host := rpcURL[strings.Index(rpcURL, "://")+3:]
	if i := strings.IndexAny(host, ":/"); i != -1 {
		host = host[:i]
	}
	if host == "127.0.0.1" {
		return "localhost"
	}
	return host
}
