package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/wsg/internal/ui/style"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(style.Slate)
	yesStyle      = lipgloss.NewStyle().Foreground(style.Red).Bold(true)
	noStyle       = lipgloss.NewStyle().Foreground(style.Slate)
)

type keyMap struct {
	Yes key.Binding
	No  key.Binding
}

var keys = keyMap{
	Yes: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "delete")),
	No:  key.NewBinding(key.WithKeys("n", "N", "enter", "esc", "ctrl+c"), key.WithHelp("n", "keep")),
}

// confirmModel is a yes/no prompt that defaults to no.
type confirmModel struct {
	question  string
	confirmed bool
	done      bool
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{question: question}
}

// Init implements tea.Model.
func (m confirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Yes):
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.No):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m confirmModel) View() string {
	q := questionStyle.Render(m.question)
	if !m.done {
		return q + " " + hintStyle.Render("[y/N]") + " "
	}
	if m.confirmed {
		return q + " " + yesStyle.Render("yes") + "\n"
	}
	return q + " " + noStyle.Render("no") + "\n"
}
