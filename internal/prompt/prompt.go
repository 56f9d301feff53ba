// Package prompt implements interactive terminal questions with bubbletea.
package prompt

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Terminal asks questions on an interactive terminal.
type Terminal struct {
	in  io.Reader
	out io.Writer
}

// New creates a Terminal reading keys from in and rendering to out. Nil
// values fall back to the process stdin and stdout.
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: in, out: out}
}

// Select shows choices as a filterable list and returns the chosen one, or
// "" when the user backs out.
func (t *Terminal) Select(ctx context.Context, message string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", nil
	}
	final, err := t.run(ctx, newSelectModel(message, choices))
	if err != nil {
		return "", fmt.Errorf("prompt: select: %w", err)
	}
	m, ok := final.(selectModel)
	if !ok {
		return "", fmt.Errorf("prompt: select: unexpected model %T", final)
	}
	return m.choice, nil
}

// Confirm shows details followed by a yes/no question. Backing out answers no.
func (t *Terminal) Confirm(ctx context.Context, message string, details []string, initial bool) (bool, error) {
	final, err := t.run(ctx, newConfirmModel(message, details, initial))
	if err != nil {
		return false, fmt.Errorf("prompt: confirm: %w", err)
	}
	m, ok := final.(confirmModel)
	if !ok {
		return false, fmt.Errorf("prompt: confirm: unexpected model %T", final)
	}
	return m.value && !m.cancelled, nil
}

func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.in != nil {
		opts = append(opts, tea.WithInput(t.in))
	}
	if t.out != nil {
		opts = append(opts, tea.WithOutput(t.out))
	}
	return tea.NewProgram(m, opts...).Run()
}
