package usecase

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/barista/internal/domain"
)

// ProcedureRegistry holds deploy procedures in registration order
type ProcedureRegistry struct {
	procedures []*DeployProcedure
}

// NewProcedureRegistry creates a registry with the given procedures
func NewProcedureRegistry(procedures ...*DeployProcedure) (*ProcedureRegistry, error) {
	r := &ProcedureRegistry{}
	for _, p := range procedures {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a procedure. Names must be unique.
func (r *ProcedureRegistry) Register(p *DeployProcedure) error {
	if p == nil || p.Name == "" {
		return fmt.Errorf("deploy procedure must have a name")
	}
	if p.Run == nil {
		return fmt.Errorf("deploy procedure %s has no Run function", p.Name)
	}
	if lo.ContainsBy(r.procedures, func(existing *DeployProcedure) bool { return existing.Name == p.Name }) {
		return fmt.Errorf("deploy procedure %s registered twice", p.Name)
	}
	r.procedures = append(r.procedures, p)
	return nil
}

// All returns every registered procedure in registration order
func (r *ProcedureRegistry) All() []*DeployProcedure {
	return append([]*DeployProcedure(nil), r.procedures...)
}

// Tags returns every known tag, deduplicated, in first-seen order
func (r *ProcedureRegistry) Tags() []string {
	return lo.Uniq(lo.FlatMap(r.procedures, func(p *DeployProcedure, _ int) []string { return p.Tags }))
}

// Select returns the procedures to run for the requested tags, with their
// dependencies expanded and ordered before them. No tags selects everything.
func (r *ProcedureRegistry) Select(tags []string) ([]*DeployProcedure, error) {
	roots := r.procedures
	if len(tags) > 0 {
		roots = nil
		for _, tag := range tags {
			matches, err := r.tagged(tag)
			if err != nil {
				return nil, err
			}
			roots = append(roots, matches...)
		}
		// keep registration order across tags
		roots = lo.Filter(r.procedures, func(p *DeployProcedure, _ int) bool { return lo.Contains(roots, p) })
	}

	const (
		visiting = 1
		done     = 2
	)
	state := make(map[*DeployProcedure]int)
	var ordered []*DeployProcedure
	var stack []string

	var visit func(p *DeployProcedure) error
	visit = func(p *DeployProcedure) error {
		switch state[p] {
		case done:
			return nil
		case visiting:
			return domain.DependencyCycleError{Path: append(append([]string(nil), stack...), p.Name)}
		}
		state[p] = visiting
		stack = append(stack, p.Name)
		for _, depTag := range p.Dependencies {
			deps, err := r.tagged(depTag)
			if err != nil {
				return fmt.Errorf("dependency of %s: %w", p.Name, err)
			}
			for _, dep := range deps {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[p] = done
		ordered = append(ordered, p)
		return nil
	}

	for _, p := range roots {
		if err := visit(p); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}

// tagged returns procedures carrying tag, or an UnknownTagError with suggestions
func (r *ProcedureRegistry) tagged(tag string) ([]*DeployProcedure, error) {
	matches := lo.Filter(r.procedures, func(p *DeployProcedure, _ int) bool {
		return lo.Contains(p.Tags, tag)
	})
	if len(matches) > 0 {
		return matches, nil
	}
	return nil, domain.UnknownTagError{Tag: tag, Suggestions: r.suggest(tag)}
}

// suggest returns up to three known tags close to tag
func (r *ProcedureRegistry) suggest(tag string) []string {
	known := r.Tags()
	var suggestions []string
	for _, t := range known {
		if strings.EqualFold(t, tag) {
			suggestions = append(suggestions, t)
		}
	}
	for _, m := range fuzzy.Find(tag, known) {
		suggestions = append(suggestions, m.Str)
	}
	suggestions = lo.Uniq(suggestions)
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
