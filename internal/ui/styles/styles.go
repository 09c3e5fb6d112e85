package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#f4a22b")

	ContainerTitle       = lipgloss.NewStyle().Bold(true)
	ContainerBorder      = lipgloss.DoubleBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Gray)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Teal)

	HeaderContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)
	ContentContainerStyle = lipgloss.NewStyle().Align(lipgloss.Center)
	FooterContainerStyle  = lipgloss.NewStyle().Align(lipgloss.Center)

	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(Black)
	CursorStyle  = FocusedStyle
	NoStyle      = lipgloss.NewStyle()
	HelpStyle    = BlurredStyle

	FocusedSubmitButton = lipgloss.NewStyle().Foreground(Accent).Render("[ Save ]")
	BlurredSubmitButton = fmt.Sprintf("[ %s ]", BlurredStyle.Render("Save"))

	Black       = lipgloss.Color("#111111")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayDark    = lipgloss.Color("#2f3030")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	White       = lipgloss.Color("#cccccc")
	Whiter      = lipgloss.Color("#aaaaaa")

	Red  = lipgloss.Color("#B8383B")
	Teal = lipgloss.Color("#2a9d8f")

	ColourGold    = lipgloss.Color("#ffd700")
	ColourGreen   = lipgloss.Color("#4d7455")
	ColourPurple  = lipgloss.Color("#8650ac")
	ColourNavy    = lipgloss.Color("#476291")
	ColourOrange  = lipgloss.Color("#cf6a32")
	ColourOversea = lipgloss.Color("#5885A2")

	HeaderStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true).Align(lipgloss.Left).PaddingLeft(0)

	SelectedCellStyle     = lipgloss.NewStyle().Padding(0).Bold(true).Background(Teal).Foreground(Black)
	SelectedCellStyleName = lipgloss.NewStyle().Padding(0).Bold(true).Width(28).Background(Teal).Foreground(Black)

	TableRow         = lipgloss.NewStyle().Foreground(White)
	TableRowOdd      = lipgloss.NewStyle().Foreground(Whiter)
	TableRowSelected = lipgloss.NewStyle().Foreground(ColourGreen)

	PanelLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue   = lipgloss.NewStyle().Width(60)
	TabContainer = lipgloss.NewStyle().Align(lipgloss.Center)
	TabsInactive = lipgloss.NewStyle().Bold(true).
			Foreground(ColourNavy).PaddingLeft(2).PaddingRight(2)
	TabsActive = lipgloss.NewStyle().
			Foreground(ColourPurple).PaddingLeft(2).PaddingRight(2)

	StatusError   = lipgloss.NewStyle().Foreground(Red).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(ColourGreen).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHealthy = lipgloss.NewStyle().Foreground(ColourGreen).Bold(true).PaddingLeft(1).Align(lipgloss.Center)
	StatusDown    = lipgloss.NewStyle().Foreground(Red).Bold(true).PaddingLeft(1).Align(lipgloss.Center)

	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center)
	StatusVersion = lipgloss.NewStyle().Foreground(ColourGreen).Bold(true).Align(lipgloss.Center)

	StatusBudget   = lipgloss.NewStyle().Foreground(ColourGold).Bold(true).PaddingLeft(1).Align(lipgloss.Center)
	StatusOverseas = lipgloss.NewStyle().Foreground(ColourOversea).Bold(true).PaddingLeft(1).Align(lipgloss.Center)

	PitchBatting  = lipgloss.NewStyle().Foreground(ColourOrange).Bold(true)
	PitchBowling  = lipgloss.NewStyle().Foreground(ColourGreen).Bold(true)
	PitchBalanced = lipgloss.NewStyle().Foreground(ColourNavy).Bold(true)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)

	HelpBox = lipgloss.NewStyle().Padding(3)

	TableRowValuesEven = lipgloss.NewStyle().Background(GrayDark)
	TableRowValuesOdd  = lipgloss.NewStyle().Background(GrayDarkAlt)

	IconAuction  = "🔨"
	IconPlayers  = "👥"
	IconSquad    = "🏏"
	IconXI       = "🏟️"
	IconCheck    = "✅"
	IconOverseas = "✈️"
	IconImpact   = "💥"
	IconInfo     = "💡"
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the lenth specified.
func WrapX(width int, value string, character string) string {
	all := width - lipgloss.Width(value)
	if all < 0 {
		return value
	}

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all/2)
}

func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "║"+title+"║", border.Top)

	return border
}

// Pitch returns the style used for a pitch condition label.
func Pitch(pitchType string) lipgloss.Style {
	switch pitchType {
	case "batting":
		return PitchBatting
	case "bowling":
		return PitchBowling
	default:
		return PitchBalanced
	}
}
