// ABOUTME: Key bindings for the inbox and configuration views
// ABOUTME: Implements the bubbles help KeyMap interfaces

package tui

import "github.com/charmbracelet/bubbles/key"

type inboxKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Filter   key.Binding
	Period   key.Binding
	Search   key.Binding
	Open     key.Binding
	Back     key.Binding
	Export   key.Binding
	Refresh  key.Binding
	SwitchTo key.Binding
	Quit     key.Binding
}

func defaultInboxKeyMap() inboxKeyMap {
	return inboxKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "previous page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next page"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "cycle filter"),
		),
		Period: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle period"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open detail"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export report"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		SwitchTo: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "api config"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k inboxKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Filter, k.Period, k.Search, k.Open, k.Export, k.SwitchTo, k.Quit}
}

func (k inboxKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},
		{k.Filter, k.Period, k.Search, k.Refresh},
		{k.Open, k.Back, k.Export, k.SwitchTo, k.Quit},
	}
}

type configKeyMap struct {
	NextProvider key.Binding
	PrevProvider key.Binding
	NextField    key.Binding
	Test         key.Binding
	Save         key.Binding
	SwitchTo     key.Binding
	Quit         key.Binding
}

func defaultConfigKeyMap() configKeyMap {
	return configKeyMap{
		NextProvider: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next provider"),
		),
		PrevProvider: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "previous provider"),
		),
		NextField: key.NewBinding(
			key.WithKeys("down", "up"),
			key.WithHelp("up/down", "switch field"),
		),
		Test: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "test key"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		SwitchTo: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sms inbox"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (k configKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextProvider, k.NextField, k.Test, k.Save, k.SwitchTo, k.Quit}
}

func (k configKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextProvider, k.PrevProvider, k.NextField},
		{k.Test, k.Save, k.SwitchTo, k.Quit},
	}
}
