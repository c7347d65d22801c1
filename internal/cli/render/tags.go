package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// ProceduresRenderer renders registered deploy procedures
type ProceduresRenderer struct {
	out io.Writer
}

// NewProceduresRenderer creates a new procedures renderer
func NewProceduresRenderer(out io.Writer) *ProceduresRenderer {
	return &ProceduresRenderer{out: out}
}

// RenderProcedures renders procedures with their tags and dependencies
func (r *ProceduresRenderer) RenderProcedures(result *usecase.ListProceduresResult) error {
	if len(result.Procedures) == 0 {
		fmt.Fprintln(r.out, "No deploy procedures registered")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{"PROCEDURE", "TAGS", "DEPENDS ON"})
	for _, p := range result.Procedures {
		t.AppendRow(table.Row{nameStyle.Sprint(p.Name), tagsStyle.Sprint(strings.Join(p.Tags, ", ")), strings.Join(p.Dependencies, ", ")})
	}
	t.Render()

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Run order: %s\n", strings.Join(result.Order, " → "))
	return nil
}
