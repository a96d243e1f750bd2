package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit          key.Binding
	OverviewTab   key.Binding
	RevenueTab    key.Binding
	ProfitTab     key.Binding
	ProjectionTab key.Binding
	InsightsTab   key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	Airlines      key.Binding
	YearRange     key.Binding
	ChartType     key.Binding
	YearLeft      key.Binding
	YearRight     key.Binding
	ScrollUp      key.Binding
	ScrollDown    key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
	ExportToFile  key.Binding
	CopyExport    key.Binding
	OpenHelp      key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	OverviewTab: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "overview"),
	),
	RevenueTab: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "revenue"),
	),
	ProfitTab: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "profit / loss"),
	),
	ProjectionTab: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "projections"),
	),
	InsightsTab: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "insights"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	Airlines: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pick airlines"),
	),
	YearRange: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "cycle year range"),
	),
	ChartType: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "line / bar (revenue tab)"),
	),
	YearLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous year"),
	),
	YearRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next year"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export to file"),
	),
	CopyExport: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy export to clipboard"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.OverviewTab,
		k.RevenueTab,
		k.ProfitTab,
		k.ProjectionTab,
		k.InsightsTab,
		k.NextTab,
		k.PrevTab,
		k.Airlines,
		k.YearRange,
		k.ChartType,
		k.YearLeft,
		k.YearRight,
		k.ScrollUp,
		k.ScrollDown,
		k.PageUp,
		k.PageDown,
		k.ExportToFile,
		k.CopyExport,
		k.Quit,
	}
}
