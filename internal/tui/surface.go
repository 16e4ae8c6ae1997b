// ABOUTME: Surface descriptor declaring every collaborator the views need
// ABOUTME: Resolved once at construction with an enumerated missing-field error

package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Pixfeed1/monchatbot-sub001/internal/api"
	"github.com/Pixfeed1/monchatbot-sub001/internal/inbox"
)

// Surface lists the collaborators the console's views are wired to. It
// replaces scattered nil checks with one up-front resolution.
type Surface struct {
	Client *api.Client
	Store  *inbox.Store
	Logger *slog.Logger

	// ReloadDelay is the post-save confirm-reload delay for the form.
	ReloadDelay time.Duration

	// ReportDir is where HTML exports land.
	ReportDir string

	// Timeout bounds each network request issued from the update loop.
	Timeout time.Duration
}

// validate returns one error naming every missing required field, or nil.
func (s Surface) validate() error {
	var missing []string
	if s.Client == nil {
		missing = append(missing, "api client")
	}
	if s.Store == nil {
		missing = append(missing, "inbox store")
	}
	if s.Logger == nil {
		missing = append(missing, "logger")
	}
	if len(missing) > 0 {
		return fmt.Errorf("surface: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// withDefaults fills optional fields the caller left zero.
func (s Surface) withDefaults() Surface {
	if s.ReloadDelay == 0 {
		s.ReloadDelay = 2 * time.Second
	}
	if s.Timeout == 0 {
		s.Timeout = 15 * time.Second
	}
	if s.ReportDir == "" {
		s.ReportDir = "."
	}
	return s
}
