package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/barista/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AccountsRenderer renders named accounts
type AccountsRenderer struct {
	out io.Writer
}

// NewAccountsRenderer creates a new accounts renderer
func NewAccountsRenderer(out io.Writer) *AccountsRenderer {
	return &AccountsRenderer{out: out}
}

// RenderAccounts renders the roles of a namespace
func (r *AccountsRenderer) RenderAccounts(result *usecase.ListAccountsResult) error {
	if len(result.Accounts) == 0 {
		fmt.Fprintf(r.out, "No named accounts in namespace %s (configure [namespace.%s.senders] in barista.toml)\n", result.Namespace, result.Namespace)
		return nil
	}

	fmt.Fprintln(r.out, sectionHeaderStyle.Sprintf("Named accounts (namespace %s):", result.Namespace))
	title := cases.Title(language.English)

	t := newTable(r.out)
	t.AppendHeader(table.Row{"ROLE", "ACCOUNT", "ADDRESS", "TYPE", "SIGNS"})
	for _, a := range result.Accounts {
		signs := "no"
		if a.CanSign {
			signs = "yes"
		}
		t.AppendRow(table.Row{
			nameStyle.Sprint(a.Role),
			a.Account,
			addressStyle.Sprint(a.Address.Hex()),
			title.String(strings.ReplaceAll(string(a.Type), "_", " ")),
			signs,
		})
	}
	t.Render()
	return nil
}
