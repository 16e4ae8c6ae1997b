// ABOUTME: API-key configuration view driving the form reducer
// ABOUTME: Provider picker, key/model inputs, test/save actions, results panel

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Pixfeed1/monchatbot-sub001/internal/form"
	"github.com/Pixfeed1/monchatbot-sub001/internal/keys"
)

type configField int

const (
	fieldKey configField = iota
	fieldModel
)

type configModel struct {
	surface Surface
	state   form.State
	keys    configKeyMap
	styles  styleSet
	help    help.Model

	keyInput   textinput.Model
	modelInput textinput.Model
	focused    configField
}

func newConfigModel(s Surface, styles styleSet) configModel {
	keyInput := textinput.New()
	keyInput.Prompt = "api key: "
	keyInput.Placeholder = "paste the provider key"
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.EchoCharacter = '•'
	keyInput.CharLimit = 256

	modelInput := textinput.New()
	modelInput.Prompt = "model:   "
	modelInput.CharLimit = 64

	return configModel{
		surface:    s,
		state:      form.NewState(s.ReloadDelay),
		keys:       defaultConfigKeyMap(),
		styles:     styles,
		help:       help.New(),
		keyInput:   keyInput,
		modelInput: modelInput,
	}
}

// init dispatches EventInit: sections hidden, stored config fetched.
func (m configModel) init() (configModel, tea.Cmd) {
	return m.dispatch(form.EventInit{})
}

// dispatch runs the reducer and turns its effects into commands.
func (m configModel) dispatch(ev form.Event) (configModel, tea.Cmd) {
	next, effects := form.Update(m.state, ev)
	m.state = next
	m.syncInputs()
	cmds := formEffectCmds(m.surface, effects)
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// syncInputs pushes reducer state back into the widgets after transitions
// that change the visible section (load, provider switch).
func (m *configModel) syncInputs() {
	if m.state.Visible == "" {
		m.keyInput.SetValue("")
		m.modelInput.SetValue("")
		m.keyInput.Blur()
		m.modelInput.Blur()
		return
	}
	f := m.state.Field(m.state.Visible)
	if m.keyInput.Value() != f.Key {
		m.keyInput.SetValue(f.Key)
	}
	placeholder := keys.DefaultModel(m.state.Visible)
	m.modelInput.Placeholder = placeholder
	if m.modelInput.Value() != f.Model {
		m.modelInput.SetValue(f.Model)
	}
}

func (m configModel) Update(msg tea.Msg) (configModel, tea.Cmd) {
	switch msg := msg.(type) {
	case configLoadedMsg:
		if msg.err != nil {
			m.surface.Logger.Error("loading stored config failed", "error", msg.err)
		}
		next, cmd := m.dispatch(form.EventConfigLoaded{Token: msg.token, Config: msg.cfg, Err: msg.err})
		if next.state.Visible != "" && !next.keyInput.Focused() && !next.modelInput.Focused() {
			next.focused = fieldKey
			var focusCmd tea.Cmd
			next, focusCmd = next.applyFocus()
			cmd = tea.Batch(cmd, focusCmd)
		}
		return next, cmd

	case testDoneMsg:
		return m.dispatch(form.EventTestFinished{Message: msg.message, Err: msg.err})

	case saveDoneMsg:
		return m.dispatch(form.EventSaveFinished{Message: msg.message, Err: msg.err})

	case reloadDueMsg:
		return m.dispatch(form.EventReloadDue{})

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m configModel) handleKey(msg tea.KeyMsg) (configModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextProvider):
		return m.selectProvider(stepProvider(m.state.Visible, 1))
	case key.Matches(msg, m.keys.PrevProvider):
		return m.selectProvider(stepProvider(m.state.Visible, -1))
	case key.Matches(msg, m.keys.Test):
		return m.dispatch(form.EventTestRequested{})
	case key.Matches(msg, m.keys.Save):
		return m.dispatch(form.EventSaveRequested{})
	case key.Matches(msg, m.keys.NextField):
		if m.state.Visible != "" {
			if m.focused == fieldKey {
				m.focused = fieldModel
			} else {
				m.focused = fieldKey
			}
			return m.applyFocus()
		}
		return m, nil
	}

	if m.state.Visible == "" {
		return m, nil
	}

	// Route the keystroke to the focused input, then mirror its value
	// into the reducer so validation and affordances update.
	var cmd tea.Cmd
	if m.focused == fieldKey {
		m.keyInput, cmd = m.keyInput.Update(msg)
		if m.keyInput.Value() != m.state.Field(m.state.Visible).Key {
			next, _ := form.Update(m.state, form.EventKeyChanged{Value: m.keyInput.Value()})
			m.state = next
		}
	} else {
		m.modelInput, cmd = m.modelInput.Update(msg)
		if m.modelInput.Value() != m.state.Field(m.state.Visible).Model {
			next, _ := form.Update(m.state, form.EventModelChanged{Value: m.modelInput.Value()})
			m.state = next
		}
	}
	return m, cmd
}

// selectProvider drives the visibility transition and puts the caret in
// the revealed section's key input.
func (m configModel) selectProvider(p keys.Provider) (configModel, tea.Cmd) {
	next, cmd := m.dispatch(form.EventSelectProvider{Provider: p})
	next.focused = fieldKey
	next, focusCmd := next.applyFocus()
	return next, tea.Batch(cmd, focusCmd)
}

func (m configModel) applyFocus() (configModel, tea.Cmd) {
	if m.focused == fieldKey {
		m.modelInput.Blur()
		return m, m.keyInput.Focus()
	}
	m.keyInput.Blur()
	return m, m.modelInput.Focus()
}

// stepProvider cycles through the picker. From the empty selection the
// first step lands on the first provider either way.
func stepProvider(current keys.Provider, delta int) keys.Provider {
	providers := keys.Providers()
	if current == "" {
		return providers[0]
	}
	for i, p := range providers {
		if p == current {
			n := len(providers)
			return providers[((i+delta)%n+n)%n]
		}
	}
	return providers[0]
}

func (m configModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("API configuration"))
	b.WriteString("\n\n")
	b.WriteString(m.pickerView())
	b.WriteString("\n")

	if m.state.Visible != "" {
		b.WriteString("\n" + m.sectionView())
	} else if m.state.Loading {
		b.WriteString("\n" + m.styles.pending.Render("loading stored configuration..."))
	} else {
		b.WriteString("\n" + m.styles.dim.Render("pick a provider to configure its API key"))
	}
	b.WriteString("\n\n" + m.actionsView())

	if m.state.ResultsVisible && m.state.Results.Kind != form.ResultNone {
		b.WriteString("\n\n" + m.resultsView())
	}
	b.WriteString("\n\n" + m.styles.help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m configModel) pickerView() string {
	entries := make([]string, 0, len(keys.Providers()))
	for _, p := range keys.Providers() {
		label := p.DisplayName()
		if p == m.state.Visible {
			entries = append(entries, m.styles.tabActive.Render(label))
		} else {
			entries = append(entries, m.styles.tab.Render(label))
		}
	}
	return "provider: " + strings.Join(entries, " | ")
}

func (m configModel) sectionView() string {
	var b strings.Builder

	keyLine := m.keyInput.View()
	if m.state.ShowInvalidMarker() {
		keyLine += "  " + m.styles.invalid.Render("✗ invalid format")
	} else if m.state.FieldValid() {
		keyLine += "  " + m.styles.valid.Render("✓")
	}
	b.WriteString(keyLine)
	b.WriteString("\n")
	b.WriteString(m.modelInput.View())
	return b.String()
}

// actionsView renders the test and save affordances. The save label is a
// pure function of (provider selected, validity); flight state only adds
// the disable.
func (m configModel) actionsView() string {
	test := "[ test key ]"
	if m.state.TestEnabled() {
		test = m.styles.button.Render(test)
	} else {
		test = m.styles.disabled.Render(test)
	}

	save := "[ " + m.state.SaveAffordance().Label() + " ]"
	if m.state.SaveEnabled() {
		save = m.styles.button.Render(save)
	} else {
		save = m.styles.disabled.Render(save)
	}

	return test + "  " + save
}

func (m configModel) resultsView() string {
	var style = m.styles.dim
	switch m.state.Results.Kind {
	case form.ResultSuccess:
		style = m.styles.success
	case form.ResultError:
		style = m.styles.errored
	case form.ResultPending:
		style = m.styles.pending
	}
	return m.styles.panel.Render(style.Render(sanitize(m.state.Results.Text)))
}
