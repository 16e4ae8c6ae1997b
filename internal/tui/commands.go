// ABOUTME: tea.Cmd constructors for every network effect and timer
// ABOUTME: Result messages carry the load token they were issued for

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Pixfeed1/monchatbot-sub001/internal/api"
	"github.com/Pixfeed1/monchatbot-sub001/internal/form"
	"github.com/Pixfeed1/monchatbot-sub001/internal/inbox"
	"github.com/Pixfeed1/monchatbot-sub001/internal/keys"
	"github.com/Pixfeed1/monchatbot-sub001/internal/report"
)

// configLoadedMsg delivers the stored config fetch for the form.
type configLoadedMsg struct {
	token string
	cfg   *api.StoredConfig
	err   error
}

// testDoneMsg delivers the live key test outcome.
type testDoneMsg struct {
	message string
	err     error
}

// saveDoneMsg delivers the save outcome.
type saveDoneMsg struct {
	message string
	err     error
}

// reloadDueMsg fires after the post-save confirm delay.
type reloadDueMsg struct{}

// inboxLoadedMsg delivers messages and stats for one inbox load.
type inboxLoadedMsg struct {
	token inbox.LoadToken
	msgs  []inbox.Message
	stats inbox.Stats
	err   error
}

// reportWrittenMsg delivers the HTML export outcome.
type reportWrittenMsg struct {
	path string
	err  error
}

func fetchConfigCmd(client *api.Client, timeout time.Duration, token string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		cfg, err := client.GetConfig(ctx)
		return configLoadedMsg{token: token, cfg: cfg, err: err}
	}
}

func testKeyCmd(client *api.Client, timeout time.Duration, p keys.Provider, key, model string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		msg, err := client.TestKey(ctx, api.TestKeyRequest{Provider: p, APIKey: key, Model: model})
		return testDoneMsg{message: msg, err: err}
	}
}

func saveConfigCmd(client *api.Client, timeout time.Duration, p keys.Provider, key, model string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		msg, err := client.SaveConfig(ctx, api.SaveConfigRequest{Provider: p, Key: key, Model: model})
		return saveDoneMsg{message: msg, err: err}
	}
}

func scheduleReloadCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return reloadDueMsg{}
	})
}

// loadInboxCmd fetches the sent collection and stats for period. Either
// request failing fails the load as a whole.
func loadInboxCmd(client *api.Client, timeout time.Duration, period inbox.Period, token inbox.LoadToken) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		msgs, err := client.SentMessages(ctx, period)
		if err != nil {
			return inboxLoadedMsg{token: token, err: err}
		}
		stats, err := client.Stats(ctx, period)
		if err != nil {
			return inboxLoadedMsg{token: token, err: err}
		}
		return inboxLoadedMsg{token: token, msgs: msgs, stats: stats}
	}
}

func writeReportCmd(dir string, data report.Data) tea.Cmd {
	return func() tea.Msg {
		path, err := report.WriteFile(dir, data)
		return reportWrittenMsg{path: path, err: err}
	}
}

// formEffectCmds translates reducer effects into commands.
func formEffectCmds(s Surface, effects []form.Effect) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, eff := range effects {
		switch eff := eff.(type) {
		case form.EffectFetchConfig:
			cmds = append(cmds, fetchConfigCmd(s.Client, s.Timeout, eff.Token))
		case form.EffectRunTest:
			cmds = append(cmds, testKeyCmd(s.Client, s.Timeout, eff.Provider, eff.Key, eff.Model))
		case form.EffectRunSave:
			cmds = append(cmds, saveConfigCmd(s.Client, s.Timeout, eff.Provider, eff.Key, eff.Model))
		case form.EffectScheduleReload:
			cmds = append(cmds, scheduleReloadCmd(eff.Delay))
		}
	}
	return cmds
}
