package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNetworkMismatch is returned when a deployments directory belongs to another chain
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrNoNetwork is returned when an operation needs a network and none was selected
	ErrNoNetwork = errors.New("no network selected")

	// ErrContractNotFound is returned when no artifact matches a contract name
	ErrContractNotFound = errors.New("contract not found")

	// ErrUnknownRole is returned when a named account role is not configured
	ErrUnknownRole = errors.New("unknown account role")

	// ErrCannotSign is returned when an account has no key material
	ErrCannotSign = errors.New("account cannot sign")

	// ErrDeploymentReverted is returned when a creation transaction reverts
	ErrDeploymentReverted = errors.New("deployment reverted")

	// ErrAborted is returned when the user declines a broadcast confirmation
	ErrAborted = errors.New("aborted by user")
)

// UnknownTagError is returned when a requested tag matches no procedure
type UnknownTagError struct {
	Tag         string
	Suggestions []string
}

func (e UnknownTagError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no deploy procedure tagged %q", e.Tag)
	}
	return fmt.Sprintf("no deploy procedure tagged %q (did you mean: %s?)", e.Tag, strings.Join(e.Suggestions, ", "))
}

// DependencyCycleError is returned when procedure dependencies form a loop
type DependencyCycleError struct {
	Path []string
}

func (e DependencyCycleError) Error() string {
	return fmt.Sprintf("dependency cycle between deploy procedures: %s", strings.Join(e.Path, " -> "))
}

// AmbiguousArtifactError is returned when a contract name matches several artifacts
type AmbiguousArtifactError struct {
	Name    string
	Matches []string
}

func (e AmbiguousArtifactError) Error() string {
	var suggestions []string
	for _, m := range e.Matches {
		suggestions = append(suggestions, "  - "+m)
	}
	return fmt.Sprintf("multiple artifacts found for %s - use the Contract option to pick one:\n%s",
		e.Name, strings.Join(suggestions, "\n"))
}
