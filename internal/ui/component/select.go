package component

import (
	"fmt"

	"github.com/cricsim/auction-tui/internal/ui/styles"
)

// SelectModel cycles through a fixed list of options with the left/right keys.
type SelectModel struct {
	Label   string
	options []string
	index   int
	focused bool
}

func NewSelectModel(label string, options []string) *SelectModel {
	return &SelectModel{Label: label, options: options}
}

func (m *SelectModel) Value() string {
	if len(m.options) == 0 {
		return ""
	}

	return m.options[m.index]
}

func (m *SelectModel) SetValue(value string) {
	for idx, opt := range m.options {
		if opt == value {
			m.index = idx

			return
		}
	}
}

func (m *SelectModel) Next() {
	if len(m.options) == 0 {
		return
	}

	m.index = (m.index + 1) % len(m.options)
}

func (m *SelectModel) Prev() {
	if len(m.options) == 0 {
		return
	}

	m.index--
	if m.index < 0 {
		m.index = len(m.options) - 1
	}
}

func (m *SelectModel) Focus() {
	m.focused = true
}

func (m *SelectModel) Blur() {
	m.focused = false
}

func (m *SelectModel) View() string {
	row := fmt.Sprintf("‹ %s ›", m.Value())
	if m.focused {
		return styles.HelpStyle.Render(m.Label+": ") + styles.FocusedStyle.Render(row)
	}

	return styles.HelpStyle.Render(m.Label+": ") + styles.NoStyle.Render(row)
}
