// ABOUTME: HTML export of the inbox's filtered view with stats and legend
// ABOUTME: Escaping is html/template's; the legend is markdown via goldmark

package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/yuin/goldmark"

	"github.com/Pixfeed1/monchatbot-sub001/internal/inbox"
)

// Data is everything the report template renders.
type Data struct {
	Title       string
	Period      inbox.Period
	Filter      inbox.Filter
	Search      string
	GeneratedAt string
	Stats       inbox.Stats
	Messages    []inbox.Message
	Legend      template.HTML
}

// Build assembles the template data from the store's current view. The
// export covers the whole filtered view, not just the visible page.
func Build(store *inbox.Store, now time.Time) Data {
	return Data{
		Title:       "SMS delivery report",
		Period:      store.Period(),
		Filter:      store.Filter(),
		Search:      store.Search(),
		GeneratedAt: now.Format("2006-01-02 15:04 MST"),
		Stats:       store.Stats(),
		Messages:    store.Filtered(),
		Legend:      renderLegend(),
	}
}

// Render writes the report HTML to w.
func Render(w io.Writer, data Data) error {
	tmpl, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	return nil
}

// WriteFile renders the report into dir and returns the file path.
func WriteFile(dir string, data Data) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	name := fmt.Sprintf("sms-report-%s-%s.html", data.Period, time.Now().Format("20060102-150405"))
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := Render(f, data); err != nil {
		return "", err
	}
	return path, nil
}

// renderLegend converts the embedded markdown legend to HTML. The legend
// ships with the binary, so it is the one trusted HTML fragment.
func renderLegend() template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert(legendMD, &buf); err != nil {
		return "<p>Legend unavailable.</p>"
	}
	return template.HTML(buf.String())
}
