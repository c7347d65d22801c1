package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/trebuchet-org/barista/internal/domain/config"
	"github.com/trebuchet-org/barista/internal/usecase"
)

// ConfirmAdapter asks y/N questions on the terminal
type ConfirmAdapter struct {
	config *config.RuntimeConfig
	prompt func(label string) (string, error)
}

// NewConfirmAdapter creates a new confirm adapter
func NewConfirmAdapter(cfg *config.RuntimeConfig) *ConfirmAdapter {
	return &ConfirmAdapter{config: cfg, prompt: runPrompt}
}

func runPrompt(label string) (string, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Templates: &promptui.PromptTemplates{
			Confirm: "{{ . | yellow }} [y/N] ",
		},
	}
	return p.Run()
}

// Confirm returns true when the user answers yes. Non-interactive runs are
// confirmed automatically.
func (c *ConfirmAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if c.config.NonInteractive {
		return true, nil
	}

	_, err := c.prompt(prompt)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		fmt.Println(color.New(color.FgYellow).Sprint("cancelled"))
		return false, nil
	default:
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
}

var _ usecase.Confirmer = (*ConfirmAdapter)(nil)
