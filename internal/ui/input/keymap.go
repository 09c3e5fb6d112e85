package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit         key.Binding
	Config       key.Binding
	Help         key.Binding
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Accept       key.Binding
	Back         key.Binding
	PrevTab      key.Binding
	NextTab      key.Binding
	Auction      key.Binding
	Analytics    key.Binding
	Squad        key.Binding
	BestXI       key.Binding
	Refresh      key.Binding
	Export       key.Binding
	Toggle       key.Binding
	Suggest      key.Binding
	Search       key.Binding
	Clear        key.Binding
	Reset        key.Binding
	FilterRole   key.Binding
	FilterNat    key.Binding
	FilterStatus key.Binding
}

// TODO make configurable.
var Default = Map{
	Help: key.NewBinding(
		key.WithKeys("h", "H"),
		key.WithHelp("h", "Help"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Config: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "Conf"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "Prev zone"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "Next zone"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next Tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev Tab"),
	),
	Auction: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Auction"),
	),
	Analytics: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Analytics"),
	),
	Squad: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Squad"),
	),
	BestXI: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "Best XI"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Refresh"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "Export CSV"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "Pick / drop"),
	),
	Suggest: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "Suggest squad"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "Search"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "Clear squad"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "Reset defaults"),
	),
	FilterRole: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "Cycle role filter"),
	),
	FilterNat: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "Cycle nationality filter"),
	),
	FilterStatus: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "Cycle status filter"),
	),
}
