package model

import (
	"sync"

	"github.com/boolean-maybe/trialscope/search"
)

// SearchState holds the outcome of the most recent submission to the
// external search and insights collaborators. The zero value is usable:
// no search is active until results arrive. Writers are the controller's
// completion callbacks; readers are the results and insights views.
type SearchState struct {
	mu        sync.RWMutex
	expr      string
	page      *search.ResultPage
	searchErr error
	insight   string
	listeners map[int]ChangeListener
	nextID    int
}

// NewSearchState creates an empty search state.
func NewSearchState() *SearchState {
	return &SearchState{
		listeners: make(map[int]ChangeListener),
		nextID:    1,
	}
}

// AddListener registers a callback for change notifications.
func (s *SearchState) AddListener(listener ChangeListener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	if s.listeners == nil {
		s.listeners = make(map[int]ChangeListener)
	}
	s.listeners[id] = listener
	return id
}

// RemoveListener removes a previously registered listener by ID
func (s *SearchState) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

func (s *SearchState) notify() {
	s.mu.RLock()
	listeners := make([]ChangeListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l()
	}
}

// SetResults stores a result page for the given expression and clears any
// previous search error.
func (s *SearchState) SetResults(expr string, page *search.ResultPage) {
	s.mu.Lock()
	s.expr = expr
	s.page = page
	s.searchErr = nil
	s.mu.Unlock()
	s.notify()
}

// SetError records a failed search. The previous results are discarded so
// the view shows the failure rather than stale hits.
func (s *SearchState) SetError(expr string, err error) {
	s.mu.Lock()
	s.expr = expr
	s.page = nil
	s.searchErr = err
	s.mu.Unlock()
	s.notify()
}

// SetInsight stores the markdown analysis text returned by the insights
// collaborator.
func (s *SearchState) SetInsight(markdown string) {
	s.mu.Lock()
	s.insight = markdown
	s.mu.Unlock()
	s.notify()
}

// Clear drops results, errors and insight text.
func (s *SearchState) Clear() {
	s.mu.Lock()
	s.expr = ""
	s.page = nil
	s.searchErr = nil
	s.insight = ""
	s.mu.Unlock()
	s.notify()
}

// IsActive reports whether a search has produced results or an error.
func (s *SearchState) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page != nil || s.searchErr != nil
}

// Expr returns the expression of the last submitted search.
func (s *SearchState) Expr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expr
}

// Results returns the last result page, or nil when no search succeeded.
func (s *SearchState) Results() *search.ResultPage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// Err returns the last search error, or nil.
func (s *SearchState) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchErr
}

// Insight returns the last insight markdown, or "" when none was fetched.
func (s *SearchState) Insight() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.insight
}
