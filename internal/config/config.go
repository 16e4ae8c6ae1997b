// ABOUTME: Configuration loading and parsing for monchat-console
// ABOUTME: Supports YAML files with environment variable expansion and duration parsing

package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Pixfeed1/monchatbot-sub001/internal/inbox"
)

// Config represents the complete monchat-console configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	CSRF    CSRFConfig    `yaml:"csrf"`
	HTTP    HTTPConfig    `yaml:"http"`
	Inbox   InboxConfig   `yaml:"inbox"`
	Form    FormConfig    `yaml:"form"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds the admin backend address
type ServerConfig struct {
	BaseURL string `yaml:"base_url"`
}

// CSRFConfig holds the pre-issued CSRF token the backend expects. Token
// takes precedence; TokenFile is read at load time as a fallback.
type CSRFConfig struct {
	Token     string `yaml:"token"`
	TokenFile string `yaml:"token_file"`
}

// HTTPConfig holds request timing configuration
type HTTPConfig struct {
	Timeout time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	TimeoutRaw string `yaml:"timeout"`
}

// InboxConfig holds the SMS inbox view configuration
type InboxConfig struct {
	PageSize      int    `yaml:"page_size"`
	DefaultPeriod string `yaml:"default_period"`
}

// FormConfig holds the configuration form's timing
type FormConfig struct {
	ReloadDelay time.Duration `yaml:"-"`

	// Raw string value for YAML unmarshaling
	ReloadDelayRaw string `yaml:"reload_delay"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// Duration strings are parsed into time.Duration values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	// Parse duration fields
	if err := parseDurations(&cfg); err != nil {
		return nil, fmt.Errorf("parsing durations: %w", err)
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	// Match ${VAR_NAME} pattern
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		// Extract variable name from ${VAR_NAME}
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

func (c *Config) applyDefaults() {
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:5000"
	}
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = 15 * time.Second
	}
	if c.Inbox.PageSize == 0 {
		c.Inbox.PageSize = inbox.DefaultPageSize
	}
	if c.Inbox.DefaultPeriod == "" {
		c.Inbox.DefaultPeriod = string(inbox.PeriodToday)
	}
	if c.Form.ReloadDelay == 0 {
		c.Form.ReloadDelay = 2 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	if c.Server.BaseURL == "" {
		return fmt.Errorf("server.base_url is required")
	}
	if !strings.HasPrefix(c.Server.BaseURL, "http://") && !strings.HasPrefix(c.Server.BaseURL, "https://") {
		return fmt.Errorf("server.base_url must start with http:// or https://")
	}

	if c.Inbox.PageSize < 1 {
		return fmt.Errorf("inbox.page_size must be at least 1")
	}

	switch inbox.Period(c.Inbox.DefaultPeriod) {
	case inbox.PeriodToday, inbox.PeriodWeek, inbox.PeriodMonth, inbox.PeriodAll:
	default:
		return fmt.Errorf("inbox.default_period must be one of today, week, month, all")
	}

	return nil
}

// CSRFToken resolves the configured token, reading the token file if the
// inline value is empty. A missing token is not an error: the backend may
// run with CSRF disabled in development.
func (c *Config) CSRFToken() (string, error) {
	if c.CSRF.Token != "" {
		return c.CSRF.Token, nil
	}
	if c.CSRF.TokenFile == "" {
		return "", nil
	}
	data, err := os.ReadFile(c.CSRF.TokenFile)
	if err != nil {
		return "", fmt.Errorf("reading csrf token file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// parseDurations converts the raw duration strings into time.Duration values
func parseDurations(cfg *Config) error {
	var err error

	if cfg.HTTP.TimeoutRaw != "" {
		cfg.HTTP.Timeout, err = time.ParseDuration(cfg.HTTP.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("parsing http.timeout %q: %w", cfg.HTTP.TimeoutRaw, err)
		}
	}

	if cfg.Form.ReloadDelayRaw != "" {
		cfg.Form.ReloadDelay, err = time.ParseDuration(cfg.Form.ReloadDelayRaw)
		if err != nil {
			return fmt.Errorf("parsing form.reload_delay %q: %w", cfg.Form.ReloadDelayRaw, err)
		}
	}

	return nil
}
