// ABOUTME: View-state store for the SMS inbox: filter, search, period, paging
// ABOUTME: Derives the filtered view deterministically and guards stale loads

package inbox

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// DefaultPageSize is the number of records shown per page.
const DefaultPageSize = 20

// LoadToken identifies one load request. Results carrying a token that no
// longer matches the store's current token are discarded: they were issued
// for a view state the user has already navigated away from.
type LoadToken string

// Store owns the fetched message collection and the view state derived
// from it. Mutating methods reset the page to 1 whenever the result set
// they produce is no longer comparable to the previous one.
type Store struct {
	records []Message
	stats   Stats

	filter   Filter
	search   string
	period   Period
	page     int
	pageSize int

	token     LoadToken
	loading   bool
	loadError error

	logger *slog.Logger
}

// NewStore creates an empty store for the given period. A pageSize of zero
// or less falls back to DefaultPageSize.
func NewStore(period Period, pageSize int, logger *slog.Logger) *Store {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		filter:   FilterAll,
		period:   period,
		page:     1,
		pageSize: pageSize,
		logger:   logger.With("component", "inbox"),
	}
}

// BeginLoad clears the collection and mints the token the eventual result
// must present. Any response still in flight for a previous token becomes
// stale the moment this returns.
func (s *Store) BeginLoad() LoadToken {
	s.records = nil
	s.stats = Stats{}
	s.loadError = nil
	s.loading = true
	s.page = 1
	s.token = LoadToken(uuid.New().String())
	return s.token
}

// ApplyLoad installs a fetched collection and stats. Stale tokens are
// dropped with a debug log and the store is left untouched.
func (s *Store) ApplyLoad(token LoadToken, msgs []Message, stats Stats) bool {
	if token != s.token {
		s.logger.Debug("dropping stale load result", "token", token)
		return false
	}
	s.records = msgs
	s.stats = stats
	s.loading = false
	s.loadError = nil
	s.page = 1
	return true
}

// FailLoad records a load failure. The store renders as empty; there is no
// automatic retry.
func (s *Store) FailLoad(token LoadToken, err error) bool {
	if token != s.token {
		s.logger.Debug("dropping stale load failure", "token", token)
		return false
	}
	s.records = nil
	s.stats = Stats{}
	s.loading = false
	s.loadError = err
	s.logger.Error("loading sent messages failed", "period", s.period, "error", err)
	return true
}

// SetFilter replaces the status filter and resets to page 1.
func (s *Store) SetFilter(f Filter) {
	if f != s.filter {
		s.filter = f
		s.page = 1
	}
}

// SetSearch replaces the search term and resets to page 1. Matching is a
// case-insensitive substring test over recipient and body.
func (s *Store) SetSearch(term string) {
	if term != s.search {
		s.search = term
		s.page = 1
	}
}

// SetPeriod replaces the reporting period and resets to page 1. The caller
// must follow up with BeginLoad: records are re-fetched wholesale, never
// filtered locally by date.
func (s *Store) SetPeriod(p Period) {
	if p != s.period {
		s.period = p
		s.page = 1
	}
}

func (s *Store) Filter() Filter     { return s.filter }
func (s *Store) Search() string     { return s.search }
func (s *Store) Period() Period     { return s.period }
func (s *Store) CurrentPage() int   { return s.page }
func (s *Store) PageSize() int      { return s.pageSize }
func (s *Store) Stats() Stats       { return s.stats }
func (s *Store) Loading() bool      { return s.loading }
func (s *Store) LoadError() error   { return s.loadError }
func (s *Store) Records() []Message { return s.records }

// Filtered returns the records passing the current filter and search term,
// in source order. It is a pure derivation: calling it twice with unchanged
// state yields the same view.
func (s *Store) Filtered() []Message {
	needle := strings.ToLower(strings.TrimSpace(s.search))
	out := make([]Message, 0, len(s.records))
	for _, m := range s.records {
		if !s.filter.matches(m) {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(m.Recipient), needle) &&
			!strings.Contains(strings.ToLower(m.Body), needle) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// PageCount returns ceil(len(filtered)/pageSize), never less than 1.
func (s *Store) PageCount() int {
	n := len(s.Filtered())
	if n == 0 {
		return 1
	}
	return (n + s.pageSize - 1) / s.pageSize
}

// Page returns the slice of the filtered view for the current page.
func (s *Store) Page() []Message {
	filtered := s.Filtered()
	start := (s.page - 1) * s.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + s.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// NextPage advances one page, clamped to the last page.
func (s *Store) NextPage() {
	if s.page < s.PageCount() {
		s.page++
	}
}

// PrevPage goes back one page, clamped to the first page.
func (s *Store) PrevPage() {
	if s.page > 1 {
		s.page--
	}
}

// PrevEnabled reports whether the previous-page control is actionable.
func (s *Store) PrevEnabled() bool { return s.page > 1 }

// NextEnabled reports whether the next-page control is actionable.
func (s *Store) NextEnabled() bool { return s.page < s.PageCount() }

// Lookup finds a record by id in the full, unfiltered collection. Detail
// views stay reachable even when the record is filtered out of the current
// page.
func (s *Store) Lookup(id int64) (Message, bool) {
	for _, m := range s.records {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}
