package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/barista/internal/domain/config"
)

// BaristaFile is the name of the project configuration file
const BaristaFile = "barista.toml"

// loadBaristaConfig loads and parses barista.toml.
// A missing file yields an empty configuration.
func loadBaristaConfig(projectRoot string) (*config.BaristaFileConfig, error) {
	cfg := &config.BaristaFileConfig{}

	path := filepath.Join(projectRoot, BaristaFile)
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", BaristaFile, err)
		}
	}

	if cfg.Accounts == nil {
		cfg.Accounts = make(map[string]config.AccountConfig)
	}
	if cfg.Namespace == nil {
		cfg.Namespace = make(map[string]config.NamespaceRoles)
	}
	if cfg.Procedures == nil {
		cfg.Procedures = make(map[string]config.ProcedureConfig)
	}

	// Expand environment variables in account and procedure fields
	for name, acct := range cfg.Accounts {
		acct.PrivateKey = os.ExpandEnv(acct.PrivateKey)
		acct.Address = os.ExpandEnv(acct.Address)
		cfg.Accounts[name] = acct
	}
	for name, proc := range cfg.Procedures {
		proc.BondAddress = os.ExpandEnv(proc.BondAddress)
		cfg.Procedures[name] = proc
	}

	return cfg, nil
}

// ResolveNamespace resolves a namespace's full configuration by walking up the
// dot-separated hierarchy and overlaying roles and profile at each level.
// For example, resolving "production.eu" walks: default → production → production.eu.
// Roles that reference unknown accounts are skipped with a warning to warnWriter.
// Pass nil for warnWriter to use os.Stderr.
func ResolveNamespace(cfg *config.BaristaFileConfig, namespaceName string, warnWriter ...io.Writer) (*config.ResolvedNamespace, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no %s loaded", BaristaFile)
	}
	if namespaceName == "" {
		namespaceName = "default"
	}
	w := resolveWarnWriter(warnWriter)

	profile := ""
	roles := make(map[string]string)
	for _, ancestor := range buildNamespaceChain(namespaceName) {
		ns, exists := cfg.Namespace[ancestor]
		if !exists {
			continue
		}
		if ns.Profile != "" {
			profile = ns.Profile
		}
		for role, account := range ns.Senders {
			roles[role] = account
		}
	}

	resolved := &config.ResolvedNamespace{
		Profile:  profile,
		Roles:    make(map[string]string, len(roles)),
		Accounts: make(map[string]config.AccountConfig, len(roles)),
	}
	for role, accountName := range roles {
		acct, exists := cfg.Accounts[accountName]
		if !exists {
			fmt.Fprintf(w, "Warning: namespace %q role %q references unknown account %q, skipping\n", namespaceName, role, accountName)
			continue
		}
		resolved.Roles[role] = accountName
		resolved.Accounts[role] = acct
	}

	return resolved, nil
}

// resolveWarnWriter returns the first writer from the variadic args, or os.Stderr if none provided.
func resolveWarnWriter(writers []io.Writer) io.Writer {
	if len(writers) > 0 && writers[0] != nil {
		return writers[0]
	}
	return os.Stderr
}

// buildNamespaceChain returns the ordered list of namespace names to resolve,
// starting from "default" and adding each dot-separated prefix.
// For "production.eu.v2" it returns: ["default", "production", "production.eu", "production.eu.v2"]
func buildNamespaceChain(namespaceName string) []string {
	if namespaceName == "default" {
		return []string{"default"}
	}

	chain := []string{"default"}
	parts := strings.Split(namespaceName, ".")
	for i := range parts {
		chain = append(chain, strings.Join(parts[:i+1], "."))
	}
	return chain
}
