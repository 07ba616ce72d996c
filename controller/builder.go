package controller

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/boolean-maybe/trialscope/model"
	"github.com/boolean-maybe/trialscope/query"
	"github.com/boolean-maybe/trialscope/search"
)

// Searcher executes a boolean query expression against the search endpoint.
// Satisfied by search.Client; tests substitute a stub.
type Searcher interface {
	Search(ctx context.Context, expr string, page int) (*search.ResultPage, error)
}

// Insighter produces a markdown analysis for a query expression.
// Satisfied by search.InsightsClient; tests substitute a stub.
type Insighter interface {
	Summarize(ctx context.Context, expr string) (string, error)
}

// BuilderController owns the editing session: which category is active, which
// insert mode the next term uses, and submission of the combined query.
type BuilderController struct {
	builder     *model.BuilderState
	searchState *model.SearchState
	history     *model.QueryHistory
	searcher    Searcher
	insighter   Insighter
	nav         *NavigationController
	timeout     time.Duration
	redraw      func(f func()) // queues f on the UI thread (Application.QueueUpdateDraw)

	mu        sync.Mutex
	active    model.Category
	mode      query.InsertMode
	onChanged func() // fires when the active category or insert mode changes
}

// NewBuilderController creates a builder controller. The redraw function is
// how async completions re-enter the UI thread; pass a synchronous function
// in tests.
func NewBuilderController(
	builder *model.BuilderState,
	searchState *model.SearchState,
	history *model.QueryHistory,
	searcher Searcher,
	insighter Insighter,
	nav *NavigationController,
	timeout time.Duration,
	redraw func(f func()),
) *BuilderController {
	return &BuilderController{
		builder:     builder,
		searchState: searchState,
		history:     history,
		searcher:    searcher,
		insighter:   insighter,
		nav:         nav,
		timeout:     timeout,
		redraw:      redraw,
		active:      model.CategoryCondition,
		mode:        query.AppendAnd,
	}
}

// SetOnChanged registers a callback for editing-session changes (active
// category, insert mode). Tree changes notify through BuilderState listeners.
func (bc *BuilderController) SetOnChanged(callback func()) {
	bc.mu.Lock()
	bc.onChanged = callback
	bc.mu.Unlock()
}

func (bc *BuilderController) notifyChanged() {
	bc.mu.Lock()
	callback := bc.onChanged
	bc.mu.Unlock()
	if callback != nil {
		// invoked outside the lock so the callback can read session state
		callback()
	}
}

// ActiveCategory returns the category edits currently apply to
func (bc *BuilderController) ActiveCategory() model.Category {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	return bc.active
}

// Mode returns the insert mode the next term will use
func (bc *BuilderController) Mode() query.InsertMode {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	return bc.mode
}

// SetMode changes the insert mode for subsequent terms
func (bc *BuilderController) SetMode(mode query.InsertMode) {
	bc.mu.Lock()
	bc.mode = mode
	bc.mu.Unlock()
	bc.notifyChanged()
}

// NextCategory advances the active category in display order, wrapping around
func (bc *BuilderController) NextCategory() model.Category {
	bc.mu.Lock()
	bc.active = model.NextCategory(bc.active)
	cat := bc.active
	bc.mu.Unlock()
	bc.notifyChanged()
	return cat
}

// PrevCategory moves the active category backwards in display order
func (bc *BuilderController) PrevCategory() model.Category {
	bc.mu.Lock()
	// three categories, so two forward steps go one back
	bc.active = model.NextCategory(model.NextCategory(bc.active))
	cat := bc.active
	bc.mu.Unlock()
	bc.notifyChanged()
	return cat
}

// SubmitTerm adds a typed term to the active category's tree using the
// current insert mode. Blank input is ignored. Returns whether the tree changed.
func (bc *BuilderController) SubmitTerm(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	bc.mu.Lock()
	cat, mode := bc.active, bc.mode
	bc.mu.Unlock()

	changed := bc.builder.Insert(cat, value, mode)
	slog.Debug("term submitted", "category", cat.String(), "value", value, "changed", changed)
	return changed
}

// ToggleTerm adds the term if absent, removes it if present. Bound to the
// toggle prompt so a suggested term can be flipped on and off by name.
func (bc *BuilderController) ToggleTerm(value string) bool {
	bc.mu.Lock()
	cat, mode := bc.active, bc.mode
	bc.mu.Unlock()
	return bc.builder.Toggle(cat, value, mode)
}

// RemoveTerm removes a term from the active category's tree
func (bc *BuilderController) RemoveTerm(value string) bool {
	bc.mu.Lock()
	cat := bc.active
	bc.mu.Unlock()
	return bc.builder.Remove(cat, value)
}

// ClearActive resets the active category's tree
func (bc *BuilderController) ClearActive() {
	bc.mu.Lock()
	cat := bc.active
	bc.mu.Unlock()
	bc.builder.Clear(cat)
}

// ClearAll resets all three category trees
func (bc *BuilderController) ClearAll() {
	bc.builder.ClearAll()
}

// Submit serializes the combined query, records it in history, and starts an
// asynchronous search for the first page. An empty combined query is a no-op.
// Returns whether a search was started.
func (bc *BuilderController) Submit() bool {
	expr := bc.builder.Combined()
	if expr == "" {
		slog.Debug("submit ignored, query is empty")
		return false
	}

	entry := bc.history.Record(expr)
	slog.Info("query submitted", "id", entry.ID, "expr", expr)

	bc.fetchPage(expr, 1)
	if bc.nav != nil {
		bc.nav.SwitchTo(model.ResultsViewID)
	}
	return true
}

// LoadPage fetches another page of the last submitted query. Ignored when no
// query has been submitted yet or the page is out of range.
func (bc *BuilderController) LoadPage(page int) bool {
	expr := bc.searchState.Expr()
	if expr == "" || page < 1 {
		return false
	}
	bc.fetchPage(expr, page)
	return true
}

// fetchPage starts the search goroutine and commits the outcome to
// SearchState on the UI thread.
func (bc *BuilderController) fetchPage(expr string, page int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), bc.timeout)
		defer cancel()

		result, err := bc.searcher.Search(ctx, expr, page)
		bc.redraw(func() {
			if err != nil {
				slog.Error("search failed", "expr", expr, "page", page, "error", err)
				bc.searchState.SetError(expr, err)
				return
			}
			bc.searchState.SetResults(expr, result)
		})
	}()
}

// RequestInsights asks the insights endpoint for a markdown summary of the
// last submitted query and switches to the insights view when it arrives.
// Returns whether a request was started.
func (bc *BuilderController) RequestInsights() bool {
	expr := bc.searchState.Expr()
	if expr == "" {
		slog.Debug("insights ignored, no submitted query")
		return false
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), bc.timeout)
		defer cancel()

		markdown, err := bc.insighter.Summarize(ctx, expr)
		bc.redraw(func() {
			if err != nil {
				slog.Error("insights request failed", "expr", expr, "error", err)
				bc.searchState.SetError(expr, err)
				return
			}
			bc.searchState.SetInsight(markdown)
			if bc.nav != nil {
				bc.nav.SwitchTo(model.InsightsViewID)
			}
		})
	}()
	return true
}

// HandleAction processes a builder-view action. Returns whether it was consumed.
func (bc *BuilderController) HandleAction(actionID ActionID) bool {
	switch actionID {
	case ActionNextCategory:
		bc.NextCategory()
		return true
	case ActionPrevCategory:
		bc.PrevCategory()
		return true
	case ActionModeAnd:
		bc.SetMode(query.AppendAnd)
		return true
	case ActionModeOr:
		bc.SetMode(query.AppendOr)
		return true
	case ActionModeNot:
		bc.SetMode(query.AppendNot)
		return true
	case ActionModeNestAnd:
		bc.SetMode(query.NestAnd)
		return true
	case ActionModeNestOr:
		bc.SetMode(query.NestOr)
		return true
	case ActionClearTree:
		bc.ClearActive()
		return true
	case ActionClearAll:
		bc.ClearAll()
		return true
	case ActionSubmit:
		return bc.Submit()
	case ActionGetInsights:
		return bc.RequestInsights()
	default:
		return false
	}
}
