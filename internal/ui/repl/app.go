// Package repl is the interactive wenyan session: a bubbletea prompt
// over a persistent interpreter, where bindings and staged values
// survive between inputs.
package repl

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tcztzy/wenyan/internal/domain"
)

const prompt = "文言> "

type model struct {
	theme Theme
	deps  Deps

	input   textinput.Model
	entries []domain.SessionEntry
	err     error
}

// Run starts the REPL and blocks until the user exits. It returns the
// transcript so the caller can decide whether to persist it.
func Run(deps Deps) ([]domain.SessionEntry, error) {
	m := newModel(deps)
	p := tea.NewProgram(m)

	out, err := p.Run()
	if err != nil {
		return nil, err
	}
	final, ok := out.(model)
	if !ok {
		return nil, fmt.Errorf("unexpected final model %T", out)
	}
	return final.entries, final.err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	ti := textinput.New()
	ti.Prompt = t.Prompt.Render(prompt)
	ti.Placeholder = "吾有一數。曰三。書之。"
	ti.Focus()

	return model{
		theme: t,
		deps:  deps,
		input: ti,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.Println(m.banner()))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - len(prompt) - 2
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			return m.evaluate(line)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate runs one input against the session interpreter and pushes
// the rendered exchange into the terminal scrollback.
func (m model) evaluate(line string) (model, tea.Cmd) {
	out, err := m.deps.Evaluator.Eval(line)

	entry := domain.SessionEntry{
		Input:  line,
		Output: out,
		At:     time.Now().UTC(),
	}
	if err != nil {
		entry.Error = err.Error()
		m.deps.Logger.Debug().Str("input", line).Err(err).Msg("repl input failed")
	}
	m.entries = append(m.entries, entry)

	var sb strings.Builder
	sb.WriteString(m.theme.Prompt.Render(prompt))
	sb.WriteString(line)
	if trimmed := strings.TrimRight(out, "\n"); trimmed != "" {
		sb.WriteString("\n")
		sb.WriteString(m.theme.Output.Render(trimmed))
	}
	if entry.Error != "" {
		sb.WriteString("\n")
		sb.WriteString(m.theme.Error.Render(entry.Error))
	}

	return m, tea.Println(sb.String())
}

func (m model) View() string {
	help := m.theme.Help.Render("enter evaluate • ctrl+d exit")
	return m.input.View() + "\n" + help
}

func (m model) banner() string {
	title := "wenyan"
	if m.deps.Version != "" {
		title += " " + m.deps.Version
	}
	return m.theme.Banner.Render(title) + "\n" +
		m.theme.Help.Render("文言文編程語言 — ctrl+d to exit")
}
