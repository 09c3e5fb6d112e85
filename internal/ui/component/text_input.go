package component

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cricsim/auction-tui/internal/ui/styles"
)

var (
	errInvalidInt   = errors.New("invalid whole number")
	errInvalidFloat = errors.New("invalid number")
	errInvalidURL   = errors.New("invalid URL")
)

type InputValidator interface {
	Validate(string) error
}

func NewValidatingTextInputModel(label string, value string, placeholder string, validators ...InputValidator) *ValidatingTextInputModel {
	input := NewTextInputModel(value, placeholder)

	if len(validators) > 0 {
		input.Validate = func(s string) error {
			for _, validator := range validators {
				if err := validator.Validate(s); err != nil {
					return err
				}
			}

			return nil
		}
	}

	return &ValidatingTextInputModel{Input: input, active: false, Label: label}
}

type ValidatingTextInputModel struct {
	Label  string
	Input  textinput.Model
	active bool
}

func (m *ValidatingTextInputModel) Init() tea.Cmd {
	return nil
}

func (m *ValidatingTextInputModel) Update(msg tea.Msg) (*ValidatingTextInputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	return m, cmd
}

func (m *ValidatingTextInputModel) View() string {
	var errRow string
	if m.Input.Err != nil {
		errRow = lipgloss.NewStyle().Foreground(styles.Red).Render("Validation Error: " + m.Input.Err.Error())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpStyle.Render(m.Label+": "),
		lipgloss.JoinVertical(lipgloss.Top, m.Input.View(), errRow))
}

func (m *ValidatingTextInputModel) Focus() tea.Cmd {
	m.Input.PromptStyle = styles.FocusedStyle
	m.Input.TextStyle = styles.FocusedStyle

	return m.Input.Focus()
}

func (m *ValidatingTextInputModel) Blur() {
	m.Input.PromptStyle = styles.NoStyle
	m.Input.TextStyle = styles.NoStyle
	m.Input.Blur()
}

type URLValidator struct {
	EmptyOK bool
}

func (v URLValidator) Validate(value string) error {
	if value == "" {
		if v.EmptyOK {
			return nil
		}

		return errInvalidURL
	}

	parsed, errParse := url.Parse(value)
	if errParse != nil {
		return errors.Join(errParse, errInvalidURL)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http(s)", errInvalidURL)
	}

	return nil
}

// IntValidator accepts whole numbers within [Min, Max].
type IntValidator struct {
	Min int
	Max int
}

func (v IntValidator) Validate(value string) error {
	parsed, errParse := strconv.Atoi(value)
	if errParse != nil {
		return errors.Join(errParse, errInvalidInt)
	}

	if parsed < v.Min || parsed > v.Max {
		return fmt.Errorf("%w: must be between %d and %d", errInvalidInt, v.Min, v.Max)
	}

	return nil
}

// FloatValidator accepts decimal numbers within [Min, Max].
type FloatValidator struct {
	Min float64
	Max float64
}

func (v FloatValidator) Validate(value string) error {
	parsed, errParse := strconv.ParseFloat(value, 64)
	if errParse != nil {
		return errors.Join(errParse, errInvalidFloat)
	}

	if parsed < v.Min || parsed > v.Max {
		return fmt.Errorf("%w: must be between %.1f and %.1f", errInvalidFloat, v.Min, v.Max)
	}

	return nil
}
