// ABOUTME: Tests for the HTML delivery report
// ABOUTME: Verifies escaping of message content, empty state, and file output

package report

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Pixfeed1/monchatbot-sub001/internal/inbox"
)

func reportStore(t *testing.T, msgs []inbox.Message) *inbox.Store {
	t.Helper()
	s := inbox.NewStore(inbox.PeriodToday, 20, nil)
	token := s.BeginLoad()
	stats := inbox.Stats{Total: len(msgs)}
	for _, m := range msgs {
		if m.Status == inbox.StatusDelivered {
			stats.Delivered++
		} else {
			stats.Failed++
		}
	}
	if !s.ApplyLoad(token, msgs, stats) {
		t.Fatal("ApplyLoad rejected current token")
	}
	return s
}

func TestRenderEscapesMessageContent(t *testing.T) {
	s := reportStore(t, []inbox.Message{{
		ID:        1,
		Recipient: "+33612340001",
		Body:      `<script>alert("x")</script>`,
		Status:    inbox.StatusDelivered,
		Provider:  "twilio",
		SentAt:    time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}})

	var buf bytes.Buffer
	if err := Render(&buf, Build(s, time.Now())); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := buf.String()

	if strings.Contains(html, `<script>alert`) {
		t.Error("message content must be escaped, raw script tag found")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped script tag in output")
	}
}

func TestRenderCoversFilteredViewNotPage(t *testing.T) {
	msgs := make([]inbox.Message, 30)
	for i := range msgs {
		msgs[i] = inbox.Message{
			ID:        int64(i + 1),
			Recipient: "+3361234",
			Body:      "msg",
			Status:    inbox.StatusDelivered,
		}
	}
	s := reportStore(t, msgs)

	var buf bytes.Buffer
	if err := Render(&buf, Build(s, time.Now())); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	// 30 rows even though the page size is 20.
	if got := strings.Count(buf.String(), "<tr>") - 1; got != 30 {
		t.Errorf("expected 30 data rows, got %d", got)
	}
}

func TestRenderEmptyState(t *testing.T) {
	s := reportStore(t, nil)

	var buf bytes.Buffer
	if err := Render(&buf, Build(s, time.Now())); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "No messages match") {
		t.Error("empty view must render the empty-state line")
	}
	if strings.Contains(html, "<tbody>") {
		t.Error("empty view must not render the table")
	}
}

func TestRenderIncludesLegend(t *testing.T) {
	s := reportStore(t, nil)
	var buf bytes.Buffer
	if err := Render(&buf, Build(s, time.Now())); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Reading this report") {
		t.Error("legend heading missing from output")
	}
	if !strings.Contains(buf.String(), "<strong>Delivered</strong>") {
		t.Error("legend markdown should render to HTML, not be escaped")
	}
}

func TestWriteFile(t *testing.T) {
	s := reportStore(t, []inbox.Message{{ID: 1, Recipient: "+336", Body: "ok", Status: inbox.StatusDelivered}})
	dir := t.TempDir()

	path, err := WriteFile(dir, Build(s, time.Now()))
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report back: %v", err)
	}
	if !strings.Contains(string(data), "SMS delivery report") {
		t.Error("written report missing title")
	}
	if !strings.HasPrefix(path, dir) || !strings.HasSuffix(path, ".html") {
		t.Errorf("unexpected report path: %s", path)
	}
}
