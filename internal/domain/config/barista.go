package config

// AccountType identifies how an account signs
type AccountType string

var (
	AccountTypePrivateKey AccountType = "private_key"
	AccountTypeAddress    AccountType = "address" // watch-only, cannot sign
)

// AccountConfig represents a named signing entity in [accounts.*] sections.
type AccountConfig struct {
	Type       AccountType `toml:"type"`
	Address    string      `toml:"address,omitempty"`
	PrivateKey string      `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
}

// NamespaceRoles represents a [namespace.*] section in barista.toml.
// Senders maps role names (e.g. "deployer") to account names.
type NamespaceRoles struct {
	Profile string            `toml:"profile,omitempty"`
	Senders map[string]string `toml:"senders"`
}

// ProcedureConfig holds [procedures.<Name>] parameters passed to deploy procedures
type ProcedureConfig struct {
	BondAddress    string `toml:"bond_address,omitempty"`
	BondDeployment string `toml:"bond_deployment,omitempty"`
}

// BaristaFileConfig represents barista.toml
type BaristaFileConfig struct {
	Accounts   map[string]AccountConfig   `toml:"accounts"`
	Namespace  map[string]NamespaceRoles  `toml:"namespace"`
	Procedures map[string]ProcedureConfig `toml:"procedures"`
}

// ResolvedNamespace holds the fully-resolved configuration for a namespace
// after walking the dot-based hierarchy and resolving role→account mappings.
type ResolvedNamespace struct {
	Profile  string                   // Resolved foundry profile name
	Roles    map[string]string        // role name → account name
	Accounts map[string]AccountConfig // role name → resolved AccountConfig
}
