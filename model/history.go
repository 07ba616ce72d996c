package model

import (
	"sync"
	"time"

	"github.com/boolean-maybe/trialscope/config"
)

// QueryHistory keeps the most recently submitted combined expressions,
// newest first, capped at a fixed size. History is session-only; nothing
// is persisted.

// HistoryEntry is one submitted search expression.
type HistoryEntry struct {
	ID          string
	Expression  string
	SubmittedAt time.Time
}

// QueryHistory is a bounded, newest-first list of submitted queries.
type QueryHistory struct {
	mu      sync.Mutex
	entries []HistoryEntry
	max     int
	now     func() time.Time
}

// DefaultHistorySize is the cap used when NewQueryHistory gets a
// non-positive max.
const DefaultHistorySize = 50

// NewQueryHistory creates a history capped at max entries.
func NewQueryHistory(max int) *QueryHistory {
	if max < 1 {
		max = DefaultHistorySize
	}
	return &QueryHistory{max: max, now: time.Now}
}

// Record appends an expression to the history, evicting the oldest entry
// when the cap is reached. Consecutive duplicates are collapsed: re-running
// the current query refreshes its timestamp instead of adding a row.
func (h *QueryHistory) Record(expr string) HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.entries) > 0 && h.entries[0].Expression == expr {
		h.entries[0].SubmittedAt = h.now()
		return h.entries[0]
	}

	entry := HistoryEntry{
		ID:          config.GenerateRandomID(),
		Expression:  expr,
		SubmittedAt: h.now(),
	}
	h.entries = append([]HistoryEntry{entry}, h.entries...)
	if len(h.entries) > h.max {
		h.entries = h.entries[:h.max]
	}
	return entry
}

// Entries returns a copy of the history, newest first.
func (h *QueryHistory) Entries() []HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *QueryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
