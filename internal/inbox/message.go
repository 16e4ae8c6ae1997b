// ABOUTME: SMS record and delivery stats types as returned by the admin API
// ABOUTME: Records are immutable once fetched; re-fetched wholesale per period

package inbox

import "time"

// Status is the delivery outcome reported by the SMS provider.
type Status string

const (
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

// Message is one sent SMS as reported by GET /api/sms/sent.
type Message struct {
	ID           int64     `json:"id"`
	Recipient    string    `json:"recipient"`
	Body         string    `json:"message"`
	Status       Status    `json:"status"`
	Provider     string    `json:"provider"`
	SentAt       time.Time `json:"sent_at"`
	ErrorMessage string    `json:"error_message,omitempty"`
}

// Stats are the aggregate delivery counts for a period.
type Stats struct {
	Total     int `json:"total"`
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

// Filter restricts the visible collection by delivery status.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterDelivered Filter = "delivered"
	FilterFailed    Filter = "failed"
)

// matches reports whether m passes the status filter.
func (f Filter) matches(m Message) bool {
	switch f {
	case FilterDelivered:
		return m.Status == StatusDelivered
	case FilterFailed:
		return m.Status == StatusFailed
	}
	return true
}

// Period selects the reporting window the server aggregates over.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// Periods returns the selectable reporting windows in display order.
func Periods() []Period {
	return []Period{PeriodToday, PeriodWeek, PeriodMonth, PeriodAll}
}
