// ABOUTME: Top-level bubbletea model: tab switching between the two views
// ABOUTME: Owns startup (both initial loads) and routes messages to views

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Pixfeed1/monchatbot-sub001/internal/inbox"
	"github.com/Pixfeed1/monchatbot-sub001/internal/prefs"
)

// Tab identifies one of the console's views.
type Tab int

const (
	TabInbox Tab = iota
	TabConfig
)

// App is the console's root model. Construct it with NewApp; the zero
// value is not usable.
type App struct {
	surface Surface
	styles  styleSet

	active Tab
	inbox  inboxModel
	config configModel
}

// NewApp wires the views to the surface, failing fast if any collaborator
// is missing.
func NewApp(s Surface, p prefs.Prefs, startTab Tab) (*App, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	s = s.withDefaults()
	styles := newStyles(p.Theme)

	s.Store.SetFilter(p.InboxFilter())

	return &App{
		surface: s,
		styles:  styles,
		active:  startTab,
		inbox:   newInboxModel(s, styles),
		config:  newConfigModel(s, styles),
	}, nil
}

// Init starts both initial loads: the stored API config and the inbox
// collection for the persisted period.
func (a *App) Init() tea.Cmd {
	var cmds []tea.Cmd

	config, cmd := a.config.init()
	a.config = config
	cmds = append(cmds, cmd)
	cmds = append(cmds, a.inbox.reload())

	return tea.Batch(cmds...)
}

// Update routes messages. Network results go to the view that issued
// them; key presses go to the active view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.inbox, cmd = a.inbox.Update(msg)
		cmds = append(cmds, cmd)
		a.config, cmd = a.config.Update(msg)
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case inboxLoadedMsg, reportWrittenMsg:
		var cmd tea.Cmd
		a.inbox, cmd = a.inbox.Update(msg)
		return a, cmd

	case configLoadedMsg, testDoneMsg, saveDoneMsg, reloadDueMsg:
		var cmd tea.Cmd
		a.config, cmd = a.config.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if msg.String() == "tab" && !a.typing() {
			if a.active == TabInbox {
				a.active = TabConfig
			} else {
				a.active = TabInbox
			}
			return a, nil
		}
		if a.active == TabInbox {
			if msg.String() == "q" && !a.inbox.searching {
				return a, tea.Quit
			}
			var cmd tea.Cmd
			a.inbox, cmd = a.inbox.Update(msg)
			return a, cmd
		}
		var cmd tea.Cmd
		a.config, cmd = a.config.Update(msg)
		return a, cmd
	}
	return a, nil
}

// typing reports whether a text input currently owns the keyboard, in
// which case tab must not switch views.
func (a *App) typing() bool {
	return a.active == TabInbox && a.inbox.searching
}

func (a *App) View() string {
	tabs := a.tabBar()
	if a.active == TabInbox {
		return tabs + "\n" + a.inbox.View()
	}
	return tabs + "\n" + a.config.View()
}

func (a *App) tabBar() string {
	inboxTab := a.styles.tab.Render("sms inbox")
	configTab := a.styles.tab.Render("api config")
	if a.active == TabInbox {
		inboxTab = a.styles.tabActive.Render("sms inbox")
	} else {
		configTab = a.styles.tabActive.Render("api config")
	}
	return inboxTab + "  " + configTab
}

// Debug exposes the current view state for inspection from the
// composition root, replacing ambient globals.
type Debug struct {
	ActiveTab   Tab
	Period      inbox.Period
	Filter      inbox.Filter
	CurrentPage int
	PageCount   int
	Records     int
}

// DebugState snapshots the console's state.
func (a *App) DebugState() Debug {
	return Debug{
		ActiveTab:   a.active,
		Period:      a.surface.Store.Period(),
		Filter:      a.surface.Store.Filter(),
		CurrentPage: a.surface.Store.CurrentPage(),
		PageCount:   a.surface.Store.PageCount(),
		Records:     len(a.surface.Store.Records()),
	}
}

// Prefs returns the preferences to persist on exit.
func (a *App) Prefs(theme string) prefs.Prefs {
	return prefs.Prefs{
		Period: string(a.surface.Store.Period()),
		Filter: string(a.surface.Store.Filter()),
		Theme:  theme,
	}
}
