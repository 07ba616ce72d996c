package model

import (
	"errors"
	"testing"

	"github.com/boolean-maybe/trialscope/search"
)

func TestSearchState_ResultFlow(t *testing.T) {
	s := NewSearchState()

	if s.IsActive() {
		t.Error("IsActive() = true, want false initially")
	}

	page := &search.ResultPage{
		Studies: []search.Study{{ID: "NCT001", Title: "Test"}},
		Total:   1,
	}
	s.SetResults("(Diabetes)", page)

	if !s.IsActive() {
		t.Error("IsActive() = false, want true after SetResults")
	}
	if s.Expr() != "(Diabetes)" {
		t.Errorf("Expr() = %q, want %q", s.Expr(), "(Diabetes)")
	}
	if got := s.Results(); got == nil || got.Total != 1 {
		t.Errorf("Results() = %+v, want the stored page", got)
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v, want nil after successful search", s.Err())
	}

	s.Clear()
	if s.IsActive() {
		t.Error("IsActive() = true, want false after Clear")
	}
	if s.Results() != nil || s.Expr() != "" {
		t.Error("Clear() did not drop results and expression")
	}
}

func TestSearchState_ErrorReplacesResults(t *testing.T) {
	s := NewSearchState()
	s.SetResults("(Diabetes)", &search.ResultPage{Total: 3})

	searchErr := errors.New("connection refused")
	s.SetError("(Diabetes)", searchErr)

	if s.Results() != nil {
		t.Error("Results() != nil after SetError, want stale results dropped")
	}
	if !errors.Is(s.Err(), searchErr) {
		t.Errorf("Err() = %v, want the stored error", s.Err())
	}
	if !s.IsActive() {
		t.Error("IsActive() = false after SetError, want true")
	}

	// a fresh success clears the error
	s.SetResults("(Diabetes)", &search.ResultPage{Total: 2})
	if s.Err() != nil {
		t.Errorf("Err() = %v after new results, want nil", s.Err())
	}
}

func TestSearchState_Insight(t *testing.T) {
	s := NewSearchState()

	if s.Insight() != "" {
		t.Error("Insight() should be empty initially")
	}

	s.SetInsight("## Overview\n\nSome analysis.")
	if s.Insight() == "" {
		t.Error("Insight() empty after SetInsight")
	}

	s.Clear()
	if s.Insight() != "" {
		t.Error("Insight() not cleared by Clear()")
	}
}

func TestSearchState_Listeners(t *testing.T) {
	s := NewSearchState()

	calls := 0
	id := s.AddListener(func() { calls++ })

	s.SetResults("(Diabetes)", &search.ResultPage{})
	s.SetError("(Diabetes)", errors.New("boom"))
	s.SetInsight("text")
	if calls != 3 {
		t.Errorf("listener calls = %d, want 3", calls)
	}

	s.RemoveListener(id)
	s.Clear()
	if calls != 3 {
		t.Errorf("listener calls = %d after RemoveListener, want 3", calls)
	}
}

func TestSearchState_ConcurrentAccess(t *testing.T) {
	s := NewSearchState()

	done := make(chan bool)

	go func() {
		for range 100 {
			s.SetResults("expr", &search.ResultPage{Total: 1})
			s.SetInsight("insight")
			s.Clear()
		}
		done <- true
	}()

	go func() {
		for range 100 {
			_ = s.IsActive()
			_ = s.Results()
			_ = s.Expr()
			_ = s.Insight()
			_ = s.Err()
		}
		done <- true
	}()

	<-done
	<-done
}
