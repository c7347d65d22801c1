package usecase

import "context"

// ListProcedures lists registered deploy procedures and their tags
type ListProcedures struct {
	registry *ProcedureRegistry
}

// NewListProcedures creates a new ListProcedures use case
func NewListProcedures(registry *ProcedureRegistry) *ListProcedures {
	return &ListProcedures{registry: registry}
}

// ListProceduresResult contains the registered procedures
type ListProceduresResult struct {
	Procedures []*DeployProcedure
	// Order is the execution order of a full run
	Order []string
}

// Run executes the use case
func (uc *ListProcedures) Run(ctx context.Context) (*ListProceduresResult, error) {
	ordered, err := uc.registry.Select(nil)
	if err != nil {
		return nil, err
	}
	order := make([]string, len(ordered))
	for i, p := range ordered {
		order[i] = p.Name
	}
	return &ListProceduresResult{
		Procedures: uc.registry.All(),
		Order:      order,
	}, nil
}
