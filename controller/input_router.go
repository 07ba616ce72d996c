package controller

import (
	"log/slog"

	"github.com/boolean-maybe/trialscope/model"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// InputRouter dispatches input events to appropriate controllers
// InputRouter is a dispatcher. It doesn't know what to do with actions—it only knows where to send them

// - Receive a raw key event
// - Determine which controller should handle it (based on current view)
// - Forward the event to that controller
// - Return whether the event was consumed

type InputRouter struct {
	navController     *NavigationController
	builderController *BuilderController
	globalActions     *ActionRegistry
	onToggleHeader    func()
}

// NewInputRouter creates an input router
func NewInputRouter(navController *NavigationController, builderController *BuilderController) *InputRouter {
	return &InputRouter{
		navController:     navController,
		builderController: builderController,
		globalActions:     DefaultGlobalActions(),
	}
}

// SetHeaderToggler registers the callback for the header visibility action
func (ir *InputRouter) SetHeaderToggler(toggle func()) {
	ir.onToggleHeader = toggle
}

// HandleInput processes a key event for the current view and routes it to the
// appropriate handler. It processes events through handlers in order:
// 1. Term prompt (if the prompt has focus, tview handles the keystrokes)
// 2. Global actions (quit, view switching, header toggle)
// 3. View-specific actions (based on current view)
// Returns true if the event was handled, false otherwise.
func (ir *InputRouter) HandleInput(event *tcell.EventKey) bool {
	slog.Debug("input received", "name", event.Name(), "key", int(event.Key()), "rune", string(event.Rune()), "modifiers", int(event.Modifiers()))

	activeView := ir.navController.GetActiveView()

	if stop, handled := ir.maybeHandlePromptInput(activeView, event); stop {
		return handled
	}

	// check global actions first
	if action := ir.globalActions.Match(event); action != nil {
		if ir.handleGlobalAction(action.ID) {
			return true
		}
	}

	// route to view-specific controller
	switch ir.navController.CurrentViewID() {
	case model.BuilderViewID:
		return ir.handleBuilderInput(activeView, event)
	case model.ResultsViewID:
		return ir.handleResultsInput(event)
	default:
		return false
	}
}

// maybeHandlePromptInput keeps keystrokes flowing to a focused term prompt.
// stop=true means input routing should stop and return handled.
func (ir *InputRouter) maybeHandlePromptInput(activeView View, event *tcell.EventKey) (stop bool, handled bool) {
	promptView, ok := activeView.(PromptView)
	if !ok {
		return false, false
	}
	if promptView.IsPromptFocused() {
		// Prompt has focus and handles input through tview.
		return true, false
	}
	return false, false
}

// handleGlobalAction processes actions available in all views
func (ir *InputRouter) handleGlobalAction(actionID ActionID) bool {
	switch actionID {
	case ActionBack:
		return ir.navController.HandleBack()
	case ActionQuit:
		ir.navController.HandleQuit()
		return true
	case ActionShowBuilder:
		ir.navController.SwitchTo(model.BuilderViewID)
		return true
	case ActionShowResults:
		ir.navController.SwitchTo(model.ResultsViewID)
		return true
	case ActionShowInsights:
		ir.navController.SwitchTo(model.InsightsViewID)
		return true
	case ActionToggleHeader:
		if ir.onToggleHeader != nil {
			ir.onToggleHeader()
			return true
		}
		return false
	default:
		return false
	}
}

// handleBuilderInput routes input while the builder view is active
func (ir *InputRouter) handleBuilderInput(activeView View, event *tcell.EventKey) bool {
	registry := BuilderViewActions()
	action := registry.Match(event)
	if action == nil {
		return false
	}

	switch action.ID {
	case ActionEnterTerm:
		return ir.focusPrompt(activeView, "add term: ", ir.builderController.SubmitTerm)
	case ActionToggleTerm:
		return ir.focusPrompt(activeView, "toggle term: ", ir.builderController.ToggleTerm)
	case ActionRemoveTerm:
		return ir.focusPrompt(activeView, "remove term: ", ir.builderController.RemoveTerm)
	default:
		return ir.builderController.HandleAction(action.ID)
	}
}

// focusPrompt reveals the term prompt with the given submit semantics and
// gives it tview focus
func (ir *InputRouter) focusPrompt(activeView View, label string, submit func(string) bool) bool {
	promptView, ok := activeView.(PromptView)
	if !ok {
		return false
	}

	app := ir.navController.GetApp()
	promptView.SetFocusSetter(func(p tview.Primitive) {
		app.SetFocus(p)
	})
	promptView.SetPromptLabel(label)
	promptView.SetPromptSubmitHandler(func(text string) {
		submit(text)
	})

	prompt := promptView.ShowPrompt()
	if prompt != nil {
		app.SetFocus(prompt)
	}
	return true
}

// handleResultsInput routes input while the results view is active
func (ir *InputRouter) handleResultsInput(event *tcell.EventKey) bool {
	registry := ResultsViewActions()
	action := registry.Match(event)
	if action == nil {
		return false
	}

	switch action.ID {
	case ActionNextPage:
		return ir.changePage(+1)
	case ActionPrevPage:
		return ir.changePage(-1)
	case ActionGetInsights:
		return ir.builderController.RequestInsights()
	default:
		return false
	}
}

// changePage moves relative to the page currently displayed
func (ir *InputRouter) changePage(delta int) bool {
	page := 1
	if activeView, ok := ir.navController.GetActiveView().(PageableView); ok {
		page = activeView.CurrentPage()
	}
	return ir.builderController.LoadPage(page + delta)
}
