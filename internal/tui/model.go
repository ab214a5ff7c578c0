// Package tui is a live preview front-end: the substitution is shown while
// the string and the two characters are typed.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Utility-Gods/charswap/internal/app"
	"github.com/Utility-Gods/charswap/internal/replace"
	"github.com/Utility-Gods/charswap/pkg/types"
)

const (
	fieldLine = iota
	fieldFrom
	fieldTo
	fieldCount
)

// maxCommitted is how many committed results stay on screen
const maxCommitted = 10

var fieldLabels = [fieldCount]string{
	"String",
	"Character to be replaced",
	"Replacing character",
}

type model struct {
	theme  Theme
	app    *app.App
	inputs [fieldCount]textinput.Model
	focus  int

	committed []app.Result
	status    string
	rejected  bool
}

// Run starts the preview on the terminal and blocks until the user quits
func Run(a *app.App) error {
	p := tea.NewProgram(newModel(a))
	_, err := p.Run()
	return err
}

func newModel(a *app.App) model {
	m := model{
		theme: DefaultTheme(),
		app:   a,
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 1
		m.inputs[i] = ti
	}
	m.inputs[fieldLine].CharLimit = types.LineCapacity - 1
	m.inputs[fieldLine].Placeholder = "type a string, or " + types.Sentinel + " to quit"
	m.inputs[fieldLine].Focus()

	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			return m.moveFocus(1), nil

		case "shift+tab", "up":
			return m.moveFocus(-1), nil

		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m model) moveFocus(delta int) model {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m
}

func (m model) submit() (tea.Model, tea.Cmd) {
	if m.focus == fieldLine && m.inputs[fieldLine].Value() == types.Sentinel {
		return m, tea.Quit
	}
	if m.focus != fieldTo {
		return m.moveFocus(1), nil
	}

	pair, ok := m.pair()
	if !ok {
		m.status = "both characters are required"
		m.rejected = true
		return m, nil
	}

	res := m.app.Apply(types.NewLine(m.inputs[fieldLine].Value()), pair)
	m.committed = append(m.committed, res)
	if len(m.committed) > maxCommitted {
		m.committed = m.committed[len(m.committed)-maxCommitted:]
	}
	m.status = fmt.Sprintf("%d replaced", res.Replaced)
	m.rejected = false

	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.inputs[m.focus].Blur()
	m.focus = fieldLine
	m.inputs[m.focus].Focus()
	return m, nil
}

// pair returns the characters typed so far; ok is false until both are set.
func (m model) pair() (types.Pair, bool) {
	from := m.inputs[fieldFrom].Value()
	to := m.inputs[fieldTo].Value()
	if from == "" || to == "" {
		return types.Pair{}, false
	}
	return types.Pair{From: from[0], To: to[0]}, true
}

// preview renders the current string with the pending substitution applied.
func (m model) preview() string {
	line := types.NewLine(m.inputs[fieldLine].Value())
	pair, ok := m.pair()
	if !ok {
		return line.String()
	}

	buf := line.Bytes()
	replace.ReplaceAll(buf, pair.From, pair.To)
	if pair.From == pair.To {
		return string(buf)
	}

	var b strings.Builder
	original := m.inputs[fieldLine].Value()
	for i, c := range buf {
		if original[i] == pair.From {
			b.WriteString(m.theme.Match.Render(string(c)))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("charswap") + "\n\n")

	for i, in := range m.inputs {
		label := m.theme.Label.Render(fieldLabels[i])
		if i == m.focus {
			label = m.theme.Focused.Render(fieldLabels[i])
		}
		b.WriteString(label + "\n" + in.View() + "\n\n")
	}

	b.WriteString(m.theme.Card.Render("New string: "+m.theme.Preview.Render(m.preview())) + "\n")

	switch {
	case m.rejected:
		b.WriteString(m.theme.Rejected.Render(m.status) + "\n")
	case m.status != "":
		b.WriteString(m.theme.Help.Render(m.status) + "\n")
	}

	if len(m.committed) > 0 {
		rows := make([]string, 0, len(m.committed))
		for _, r := range m.committed {
			rows = append(rows, fmt.Sprintf("%q -> %q", r.Input, r.Output))
		}
		b.WriteString("\n" + lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n")
	}

	b.WriteString("\n" + m.theme.Help.Render("tab: next field • enter: apply • esc: quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
