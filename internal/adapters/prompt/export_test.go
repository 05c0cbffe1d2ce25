package prompt

import tea "github.com/charmbracelet/bubbletea"

// ConfirmModelExported exposes the confirmation model for testing.
type ConfirmModelExported = confirmModel

// NewConfirmModelExported exposes newConfirmModel for testing.
func NewConfirmModelExported(question string) tea.Model {
	return newConfirmModel(question)
}

// Confirmed reports whether the model recorded a yes.
func (m confirmModel) Confirmed() bool { return m.confirmed }

// Done reports whether the model received a final answer.
func (m confirmModel) Done() bool { return m.done }
