package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/barista/internal/domain"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/domain/models"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// Loader reads Foundry build artifacts from the out directory
type Loader struct {
	outDir string

	mu    sync.Mutex
	cache map[string]*models.Artifact
}

// NewLoader creates a loader for outDir
func NewLoader(outDir string) *Loader {
	return &Loader{outDir: outDir, cache: make(map[string]*models.Artifact)}
}

// NewLoaderFromConfig uses the out directory of the namespace's foundry profile
func NewLoaderFromConfig(cfg *config.RuntimeConfig) *Loader {
	profile := "default"
	if cfg.BaristaConfig != nil {
		if ns, ok := cfg.BaristaConfig.Namespace[cfg.Namespace]; ok && ns.Profile != "" {
			profile = ns.Profile
		}
	}
	out := "out"
	if cfg.FoundryConfig != nil {
		out = cfg.FoundryConfig.OutDir(profile)
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(cfg.ProjectRoot, out)
	}
	return NewLoader(out)
}

// GetArtifact finds <out>/**/<Name>.json. A name of the form
// "Source.sol:Name" restricts the search to that source file.
func (l *Loader) GetArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if a, ok := l.cache[name]; ok {
		return a, nil
	}

	source, contract, qualified := strings.Cut(name, ":")
	if !qualified {
		contract = name
	}

	matches, err := l.find(source, contract, qualified)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: no artifact for %s in %s (run forge build?)", domain.ErrContractNotFound, name, l.outDir)
	case 1:
	default:
		rel := make([]string, len(matches))
		for i, m := range matches {
			rel[i], _ = filepath.Rel(l.outDir, m)
		}
		return nil, domain.AmbiguousArtifactError{Name: name, Matches: rel}
	}

	artifact, err := parseArtifact(matches[0], contract)
	if err != nil {
		return nil, err
	}
	l.cache[name] = artifact
	return artifact, nil
}

func (l *Loader) find(source, contract string, qualified bool) ([]string, error) {
	if qualified {
		path := filepath.Join(l.outDir, filepath.Base(source), contract+".json")
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, nil
			}
			return nil, err
		}
		return []string{path}, nil
	}

	var matches []string
	err := filepath.WalkDir(l.outDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && path == l.outDir {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" {
				return fs.SkipDir
			}
			return nil
		}
		if d.Name() == contract+".json" {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", l.outDir, err)
	}
	return matches, nil
}

// foundryArtifact is the subset of a forge build artifact barista reads
type foundryArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode struct {
		Object string `json:"object"`
	} `json:"bytecode"`
	DeployedBytecode struct {
		Object string `json:"object"`
	} `json:"deployedBytecode"`
}

func parseArtifact(path, name string) (*models.Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw foundryArtifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	if len(raw.ABI) == 0 {
		return nil, fmt.Errorf("artifact %s has no abi", path)
	}

	parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("invalid abi in %s: %w", path, err)
	}

	bytecode, err := decodeBytecode(raw.Bytecode.Object)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode in %s: %w", path, err)
	}
	deployed, err := decodeBytecode(raw.DeployedBytecode.Object)
	if err != nil {
		return nil, fmt.Errorf("invalid deployed bytecode in %s: %w", path, err)
	}

	return &models.Artifact{
		Name:             name,
		Path:             path,
		RawABI:           raw.ABI,
		ABI:              parsed,
		Bytecode:         bytecode,
		DeployedBytecode: deployed,
	}, nil
}

func decodeBytecode(object string) ([]byte, error) {
	if object == "" || object == "0x" {
		return nil, nil
	}
	if strings.Contains(object, "__$") {
		return nil, fmt.Errorf("bytecode has unlinked library references")
	}
	if !strings.HasPrefix(object, "0x") {
		object = "0x" + object
	}
	return hexutil.Decode(object)
}

var _ usecase.ArtifactRepository = (*Loader)(nil)
