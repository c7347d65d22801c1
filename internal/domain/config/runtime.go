package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Namespace string   // selects the [namespace.*] role mapping
	Network   *Network // nil if not specified

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Resolved configurations
	FoundryConfig *FoundryConfig
	BaristaConfig *BaristaFileConfig
}

// Network represents network configuration
type Network struct {
	Name        string `json:"name"`
	RPCURL      string `json:"rpcUrl"`
	ChainID     uint64 `json:"chainId"` // 0 until resolved from the RPC endpoint
	ExplorerURL string `json:"explorerUrl,omitempty"`
}

// IsDevelopment reports whether the network is a local development chain
// (anvil, hardhat, geth --dev)
func (n *Network) IsDevelopment() bool {
	switch n.ChainID {
	case 31337, 1337:
		return true
	}
	return n.Name == "localhost" || n.Name == "anvil"
}
