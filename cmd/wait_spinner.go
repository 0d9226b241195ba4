package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

type waitDoneMsg struct {
	err error
}

type waitSpinnerModel struct {
	spinner spinner.Model
	label   string
	wait    tea.Cmd
	err     error
	done    bool
}

func newWaitSpinnerModel(label string, wait tea.Cmd) waitSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return waitSpinnerModel{
		spinner: s,
		label:   label,
		wait:    wait,
	}
}

func (m waitSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.wait)
}

func (m waitSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case waitDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m waitSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// waitWithSpinner runs wait behind a spinner on output. Lines handed to the
// print callback are shown above the spinner. Without a terminal no spinner
// is drawn and lines go straight to output.
func waitWithSpinner(ctx context.Context, output io.Writer, label string, wait func(context.Context, func(string)) error) error {
	if !isTerminal(output) {
		return wait(ctx, func(line string) {
			_, _ = fmt.Fprintln(output, line)
		})
	}

	var p *tea.Program
	waitCmd := func() tea.Msg {
		return waitDoneMsg{err: wait(ctx, func(line string) { p.Println(line) })}
	}

	p = tea.NewProgram(
		newWaitSpinnerModel(label, waitCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(waitSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
