package model

import (
	"sync"

	"github.com/boolean-maybe/trialscope/query"
)

// BuilderState holds the three per-category query trees and notifies
// listeners on every change. All tree edits go through the pure query
// operations; this type only commits the returned trees and serializes
// access. It is safe for concurrent use, though in practice edits arrive
// one at a time from the UI event loop.
type BuilderState struct {
	mu             sync.RWMutex
	trees          [len(Categories)]query.Tree
	listeners      map[int]ChangeListener
	nextListenerID int
}

// ChangeListener is called after the builder's trees change.
type ChangeListener func()

// NewBuilderState creates a builder state with all categories empty.
func NewBuilderState() *BuilderState {
	return &BuilderState{
		listeners:      make(map[int]ChangeListener),
		nextListenerID: 1, // start at 1 to avoid conflict with zero-value sentinel
	}
}

// AddListener registers a callback for change notifications.
// returns a listener ID that can be used to remove the listener.
func (s *BuilderState) AddListener(listener ChangeListener) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	return id
}

// RemoveListener removes a previously registered listener by ID
func (s *BuilderState) RemoveListener(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.listeners, id)
}

// notifyListeners calls all registered listeners outside the lock.
func (s *BuilderState) notifyListeners() {
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

// Insert adds a term to the category's tree using the given mode. Returns
// true when the tree changed; a duplicate or empty value is a no-op and
// returns false so the caller can surface "already selected".
func (s *BuilderState) Insert(cat Category, value string, mode query.InsertMode) bool {
	if !cat.Valid() {
		return false
	}

	s.mu.Lock()
	before := s.trees[cat]
	after := before.Insert(value, mode)
	changed := !treesEqual(before, after)
	s.trees[cat] = after
	s.mu.Unlock()

	if changed {
		s.notifyListeners()
	}
	return changed
}

// Remove deletes a term from the category's tree. Removing an absent term
// is a no-op and returns false.
func (s *BuilderState) Remove(cat Category, value string) bool {
	if !cat.Valid() {
		return false
	}

	s.mu.Lock()
	before := s.trees[cat]
	after := before.Remove(value)
	changed := !treesEqual(before, after)
	s.trees[cat] = after
	s.mu.Unlock()

	if changed {
		s.notifyListeners()
	}
	return changed
}

// Toggle inserts the term when absent and removes it when present, so a
// suggested term behaves as an on/off chip in the UI.
func (s *BuilderState) Toggle(cat Category, value string, mode query.InsertMode) bool {
	if s.Contains(cat, value) {
		return s.Remove(cat, value)
	}
	return s.Insert(cat, value, mode)
}

// Clear resets one category's tree to empty.
func (s *BuilderState) Clear(cat Category) {
	if !cat.Valid() {
		return
	}

	s.mu.Lock()
	changed := !s.trees[cat].IsEmpty()
	s.trees[cat] = query.Empty()
	s.mu.Unlock()

	if changed {
		s.notifyListeners()
	}
}

// ClearAll resets every category's tree to empty.
func (s *BuilderState) ClearAll() {
	s.mu.Lock()
	changed := false
	for i := range s.trees {
		if !s.trees[i].IsEmpty() {
			changed = true
		}
		s.trees[i] = query.Empty()
	}
	s.mu.Unlock()

	if changed {
		s.notifyListeners()
	}
}

// Tree returns the category's current tree. Trees are immutable values, so
// the returned tree is safe to hold across later edits.
func (s *BuilderState) Tree(cat Category) query.Tree {
	if !cat.Valid() {
		return query.Empty()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trees[cat]
}

// Contains reports whether the category's tree holds the given term.
func (s *BuilderState) Contains(cat Category, value string) bool {
	return s.Tree(cat).Contains(value)
}

// Preview returns the category's serialized query string.
func (s *BuilderState) Preview(cat Category) string {
	return s.Tree(cat).Serialize()
}

// Combined returns the final search expression: the non-empty category
// serializations parenthesized and joined with AND.
func (s *BuilderState) Combined() string {
	s.mu.RLock()
	condition := s.trees[CategoryCondition]
	intervention := s.trees[CategoryIntervention]
	other := s.trees[CategoryOther]
	s.mu.RUnlock()
	return query.Combine(condition, intervention, other)
}

// IsEmpty reports whether every category's tree is empty.
func (s *BuilderState) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.trees {
		if !s.trees[i].IsEmpty() {
			return false
		}
	}
	return true
}

// treesEqual compares two trees by their canonical serialization, which is
// a pure function of tree shape.
func treesEqual(a, b query.Tree) bool {
	if len(a) != len(b) {
		return false
	}
	return a.Serialize() == b.Serialize()
}
