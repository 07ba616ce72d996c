package controller

import (
	"log/slog"

	"github.com/boolean-maybe/trialscope/model"

	"github.com/rivo/tview"
)

// NavigationController handles view transitions between the fixed top-level views.
// It does NOT create views - that's handled by RootLayout which observes the callback.

// NavigationController tracks the active view and delegates view creation to RootLayout
type NavigationController struct {
	app              *tview.Application
	current          model.ViewID
	activeViewGetter func() View               // returns the currently displayed view from RootLayout
	onViewChanged    func(viewID model.ViewID) // callback when view changes (for layout sync)
}

// NewNavigationController creates a navigation controller starting on the builder view
func NewNavigationController(app *tview.Application) *NavigationController {
	return &NavigationController{
		app:     app,
		current: model.BuilderViewID,
	}
}

// SetActiveViewGetter sets the function to retrieve the currently displayed view
func (nc *NavigationController) SetActiveViewGetter(getter func() View) {
	nc.activeViewGetter = getter
}

// SetOnViewChanged registers a callback that runs when the view changes
func (nc *NavigationController) SetOnViewChanged(callback func(viewID model.ViewID)) {
	nc.onViewChanged = callback
}

// SwitchTo makes viewID the active view. Switching to the already-active
// view is a no-op. Returns whether the switch happened.
func (nc *NavigationController) SwitchTo(viewID model.ViewID) bool {
	if viewID == nc.current {
		return false
	}
	valid := false
	for _, id := range model.AllViewIDs {
		if id == viewID {
			valid = true
			break
		}
	}
	if !valid {
		slog.Warn("switch to unknown view ignored", "view", string(viewID))
		return false
	}

	nc.current = viewID
	if nc.onViewChanged != nil {
		nc.onViewChanged(viewID)
	}
	return true
}

// GetActiveView returns the currently displayed view (from RootLayout)
func (nc *NavigationController) GetActiveView() View {
	if nc.activeViewGetter != nil {
		return nc.activeViewGetter()
	}
	return nil
}

// CurrentViewID returns the view ID of the active view
func (nc *NavigationController) CurrentViewID() model.ViewID {
	return nc.current
}

// GetApp returns the tview application
func (nc *NavigationController) GetApp() *tview.Application {
	return nc.app
}

// HandleBack returns to the builder view from anywhere else
func (nc *NavigationController) HandleBack() bool {
	return nc.SwitchTo(model.BuilderViewID)
}

// HandleQuit stops the application
func (nc *NavigationController) HandleQuit() {
	nc.app.Stop()
}
