// ABOUTME: SMS inbox view: stats, filter tabs, search, paged table, detail
// ABOUTME: Renders purely from the store; identical state yields identical rows

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Pixfeed1/monchatbot-sub001/internal/inbox"
	"github.com/Pixfeed1/monchatbot-sub001/internal/report"
)

const (
	colRecipient = 16
	colBody      = 40
	colStatus    = 10
	colSent      = 17
)

type inboxModel struct {
	surface Surface
	store   *inbox.Store
	keys    inboxKeyMap
	styles  styleSet
	help    help.Model

	search    textinput.Model
	searching bool

	// cursor indexes into the current page slice.
	cursor int

	// detail, when set, replaces the list with a single record view.
	detail *inbox.Message

	notice string
	width  int
}

func newInboxModel(s Surface, styles styleSet) inboxModel {
	search := textinput.New()
	search.Placeholder = "recipient or message text"
	search.Prompt = "search: "
	search.CharLimit = 120

	return inboxModel{
		surface: s,
		store:   s.Store,
		keys:    defaultInboxKeyMap(),
		styles:  styles,
		help:    help.New(),
		search:  search,
	}
}

// reload begins a fresh load for the store's current period and returns
// the command that will deliver it.
func (m *inboxModel) reload() tea.Cmd {
	token := m.store.BeginLoad()
	return loadInboxCmd(m.surface.Client, m.surface.Timeout, m.store.Period(), token)
}

func (m inboxModel) Update(msg tea.Msg) (inboxModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case inboxLoadedMsg:
		if msg.err != nil {
			m.store.FailLoad(msg.token, msg.err)
			return m, nil
		}
		m.store.ApplyLoad(msg.token, msg.msgs, msg.stats)
		m.cursor = 0
		return m, nil

	case reportWrittenMsg:
		if msg.err != nil {
			m.surface.Logger.Error("report export failed", "error", msg.err)
			m.notice = m.styles.errored.Render("export failed: " + msg.err.Error())
		} else {
			m.notice = m.styles.success.Render("report written to " + msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m inboxModel) handleKey(msg tea.KeyMsg) (inboxModel, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != m.store.Search() {
			m.store.SetSearch(m.search.Value())
			m.cursor = 0
		}
		return m, cmd
	}

	if m.detail != nil {
		if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Open) {
			m.detail = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.store.Page())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.PrevPage):
		if m.store.PrevEnabled() {
			m.store.PrevPage()
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.NextPage):
		if m.store.NextEnabled() {
			m.store.NextPage()
			m.cursor = 0
		}
	case key.Matches(msg, m.keys.Filter):
		m.store.SetFilter(nextFilter(m.store.Filter()))
		m.cursor = 0
	case key.Matches(msg, m.keys.Period):
		m.store.SetPeriod(nextPeriod(m.store.Period()))
		m.cursor = 0
		return m, m.reload()
	case key.Matches(msg, m.keys.Refresh):
		m.cursor = 0
		return m, m.reload()
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Open):
		page := m.store.Page()
		if m.cursor < len(page) {
			// Lookup goes through the full collection on purpose: the
			// detail stays reachable under any filter.
			if rec, ok := m.store.Lookup(page[m.cursor].ID); ok {
				m.detail = &rec
			}
		}
	case key.Matches(msg, m.keys.Export):
		data := report.Build(m.store, time.Now())
		return m, writeReportCmd(m.surface.ReportDir, data)
	}
	return m, nil
}

func nextFilter(f inbox.Filter) inbox.Filter {
	switch f {
	case inbox.FilterAll:
		return inbox.FilterDelivered
	case inbox.FilterDelivered:
		return inbox.FilterFailed
	}
	return inbox.FilterAll
}

func nextPeriod(p inbox.Period) inbox.Period {
	periods := inbox.Periods()
	for i, candidate := range periods {
		if candidate == p {
			return periods[(i+1)%len(periods)]
		}
	}
	return periods[0]
}

func (m inboxModel) View() string {
	if m.detail != nil {
		return m.detailView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.tableView())
	if m.notice != "" {
		b.WriteString("\n" + m.notice)
	}
	b.WriteString("\n" + m.styles.help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m inboxModel) headerView() string {
	stats := m.store.Stats()
	title := m.styles.title.Render("SMS inbox")
	counts := fmt.Sprintf("total %d · delivered %s · failed %s",
		stats.Total,
		m.styles.success.Render(fmt.Sprintf("%d", stats.Delivered)),
		m.styles.errored.Render(fmt.Sprintf("%d", stats.Failed)),
	)
	period := m.styles.dim.Render("period: " + string(m.store.Period()))

	tabs := make([]string, 0, 3)
	for _, f := range []inbox.Filter{inbox.FilterAll, inbox.FilterDelivered, inbox.FilterFailed} {
		if f == m.store.Filter() {
			tabs = append(tabs, m.styles.tabActive.Render(string(f)))
		} else {
			tabs = append(tabs, m.styles.tab.Render(string(f)))
		}
	}
	return fmt.Sprintf("%s  %s  %s\n%s", title, counts, period, strings.Join(tabs, " | "))
}

// tableView renders the current page. It is a pure function of the
// filtered view and the page number: no hidden cursor state leaks into
// the rows themselves.
func (m inboxModel) tableView() string {
	if m.store.Loading() {
		return m.styles.pending.Render("loading messages...")
	}

	filtered := m.store.Filtered()
	if len(filtered) == 0 {
		// Empty state hides the pagination footer entirely.
		empty := "No messages match the current view."
		if err := m.store.LoadError(); err != nil {
			empty = "Could not load messages. Check the server connection and press r to retry."
		} else if len(m.store.Records()) == 0 {
			empty = "No messages sent in this period."
		}
		return m.styles.dim.Render(empty)
	}

	var b strings.Builder
	b.WriteString(m.styles.header.Render(
		pad("recipient", colRecipient) + " " +
			pad("message", colBody) + " " +
			pad("status", colStatus) + " " +
			pad("sent", colSent),
	))
	b.WriteString("\n")

	for i, rec := range m.store.Page() {
		row := pad(sanitize(rec.Recipient), colRecipient) + " " +
			pad(sanitize(rec.Body), colBody) + " " +
			pad(string(rec.Status), colStatus) + " " +
			pad(rec.SentAt.Format("2006-01-02 15:04"), colSent)

		style := m.styles.row
		if rec.Status == inbox.StatusFailed {
			style = m.styles.rowFailed
		}
		if i == m.cursor {
			style = m.styles.selected
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.paginationView())
	return b.String()
}

func (m inboxModel) paginationView() string {
	prev := "← prev"
	if !m.store.PrevEnabled() {
		prev = m.styles.disabled.Render(prev)
	} else {
		prev = m.styles.button.Render(prev)
	}
	next := "next →"
	if !m.store.NextEnabled() {
		next = m.styles.disabled.Render(next)
	} else {
		next = m.styles.button.Render(next)
	}
	return fmt.Sprintf("%s  page %d/%d  %s", prev, m.store.CurrentPage(), m.store.PageCount(), next)
}

func (m inboxModel) detailView() string {
	rec := m.detail
	var b strings.Builder
	b.WriteString(m.styles.title.Render(fmt.Sprintf("Message #%d", rec.ID)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("recipient:  %s\n", sanitize(rec.Recipient)))
	b.WriteString(fmt.Sprintf("provider:   %s\n", sanitize(rec.Provider)))
	b.WriteString(fmt.Sprintf("sent at:    %s\n", rec.SentAt.Format(time.RFC1123)))

	status := m.styles.success.Render(string(rec.Status))
	if rec.Status == inbox.StatusFailed {
		status = m.styles.errored.Render(string(rec.Status))
	}
	b.WriteString(fmt.Sprintf("status:     %s\n", status))
	if rec.ErrorMessage != "" {
		b.WriteString(fmt.Sprintf("error:      %s\n", m.styles.errored.Render(sanitize(rec.ErrorMessage))))
	}
	b.WriteString("\n")
	body := sanitize(rec.Body)
	if body == "" {
		body = m.styles.dim.Render("(empty message)")
	}
	b.WriteString(m.styles.panel.Render(body))
	b.WriteString("\n\n" + m.styles.help.Render("esc back"))
	return b.String()
}
