package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	BatteryUp   key.Binding
	BatteryDown key.Binding
	Connection  key.Binding
	Quiet       key.Binding
	Clock       key.Binding
	NextDay     key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		BatteryUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "charge"),
		),
		BatteryDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "drain"),
		),
		Connection: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "phone link"),
		),
		Quiet: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quiet time"),
		),
		Clock: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "12/24h"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next day"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.BatteryUp, k.BatteryDown, k.Connection, k.Quiet, k.Clock, k.NextDay, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.BatteryUp, k.BatteryDown},
		{k.Connection, k.Quiet},
		{k.Clock, k.NextDay, k.Quit},
	}
}
