// ABOUTME: Terminal console for the mon chatbot admin backend
// ABOUTME: Wires config, API client, inbox store, and views, then runs the TUI

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"

	"github.com/Pixfeed1/monchatbot-sub001/internal/api"
	"github.com/Pixfeed1/monchatbot-sub001/internal/config"
	"github.com/Pixfeed1/monchatbot-sub001/internal/inbox"
	"github.com/Pixfeed1/monchatbot-sub001/internal/prefs"
	"github.com/Pixfeed1/monchatbot-sub001/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to console.yaml (optional)")
	server := flag.String("server", "", "Admin backend URL (overrides config)")
	view := flag.String("view", "inbox", "Starting view: inbox or config")
	reportDir := flag.String("report-dir", ".", "Directory for HTML report exports")
	logPath := flag.String("log", "", "Write logs to this file (default: discarded)")
	showState := flag.Bool("debug-state", false, "Print the final view state on exit")
	flag.Parse()

	if err := run(*configPath, *server, *view, *reportDir, *logPath, *showState); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(configPath, serverOverride, view, reportDir, logPath string, showState bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if serverOverride != "" {
		cfg.Server.BaseURL = serverOverride
	} else if env := os.Getenv("MONCHAT_SERVER"); env != "" {
		cfg.Server.BaseURL = env
	}

	logger, closeLog, err := newLogger(cfg, logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	token, err := csrfToken(cfg)
	if err != nil {
		return err
	}

	client := api.New(cfg.Server.BaseURL,
		api.WithCSRFToken(token),
		api.WithTimeout(cfg.HTTP.Timeout),
		api.WithLogger(logger),
	)

	prefsPath, err := prefs.DefaultPath()
	if err != nil {
		return err
	}
	userPrefs := prefs.Load(prefsPath)

	// Saved preferences win over the config default once the user has
	// changed the period at least once.
	period := userPrefs.InboxPeriod()
	if period == inbox.PeriodToday && cfg.Inbox.DefaultPeriod != "" {
		period = inbox.Period(cfg.Inbox.DefaultPeriod)
	}
	store := inbox.NewStore(period, cfg.Inbox.PageSize, logger)

	startTab := tui.TabInbox
	if view == "config" {
		startTab = tui.TabConfig
	}

	app, err := tui.NewApp(tui.Surface{
		Client:      client,
		Store:       store,
		Logger:      logger,
		ReloadDelay: cfg.Form.ReloadDelay,
		ReportDir:   reportDir,
		Timeout:     cfg.HTTP.Timeout,
	}, userPrefs, startTab)
	if err != nil {
		return err
	}

	color.Cyan("monchat-console → %s", cfg.Server.BaseURL)
	if token == "" {
		color.Yellow("No CSRF token configured (set MONCHAT_CSRF_TOKEN)")
	}

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running console: %w", err)
	}

	if err := prefs.Save(prefsPath, app.Prefs(userPrefs.Theme)); err != nil {
		logger.Warn("saving preferences failed", "error", err)
	}

	if showState {
		state := app.DebugState()
		fmt.Printf("period=%s filter=%s page=%d/%d records=%d\n",
			state.Period, state.Filter, state.CurrentPage, state.PageCount, state.Records)
	}
	return nil
}

// loadConfig resolves the configuration: explicit path, MONCHAT_CONFIG,
// ./console.yaml, or built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("MONCHAT_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat("console.yaml"); err == nil {
			path = "console.yaml"
		}
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// csrfToken resolves the CSRF token: env var, config, or the token file
// under the XDG config directory.
func csrfToken(cfg *config.Config) (string, error) {
	if env := os.Getenv("MONCHAT_CSRF_TOKEN"); env != "" {
		return env, nil
	}
	token, err := cfg.CSRFToken()
	if err != nil || token != "" {
		return token, err
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", nil
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	data, err := os.ReadFile(filepath.Join(configDir, "monchat", "csrf"))
	if err != nil {
		return "", nil
	}
	return strings.TrimSpace(string(data)), nil
}

// newLogger builds the slog logger from config. Without a log file the
// output is discarded: the alternate screen owns the terminal.
func newLogger(cfg *config.Config, logPath string) (*slog.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeLog := func() {}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}

	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), closeLog, nil
}
