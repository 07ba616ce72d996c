package view

import (
	"log/slog"

	"github.com/boolean-maybe/trialscope/controller"
	"github.com/boolean-maybe/trialscope/model"

	"github.com/rivo/tview"
)

// RootLayout is a container view managing a persistent header and swappable
// content area. Views are created lazily by the factory and kept as pages,
// so switching back preserves their state.
type RootLayout struct {
	root        *tview.Flex
	header      *HeaderWidget
	pages       *tview.Pages
	viewFactory controller.ViewFactory
	app         *tview.Application

	views         map[model.ViewID]controller.View
	activeView    controller.View
	headerVisible bool

	onViewActivated func(controller.View)
}

// NewRootLayout creates a root layout managing header and content pages
func NewRootLayout(hdr *HeaderWidget, viewFactory controller.ViewFactory, app *tview.Application, headerVisible bool) *RootLayout {
	rl := &RootLayout{
		root:          tview.NewFlex().SetDirection(tview.FlexRow),
		header:        hdr,
		pages:         tview.NewPages(),
		viewFactory:   viewFactory,
		app:           app,
		views:         make(map[model.ViewID]controller.View),
		headerVisible: headerVisible,
	}

	rl.rebuildLayout()
	return rl
}

// SetOnViewActivated registers a callback that runs when any view becomes active.
// This is used to wire up focus setters and other view-specific setup.
func (rl *RootLayout) SetOnViewActivated(callback func(controller.View)) {
	rl.onViewActivated = callback
}

// ShowView makes viewID the visible content page, creating the view on first
// use. Wire this to NavigationController.SetOnViewChanged.
func (rl *RootLayout) ShowView(viewID model.ViewID) {
	v, ok := rl.views[viewID]
	if !ok {
		v = rl.viewFactory.CreateView(viewID)
		if v == nil {
			slog.Error("failed to create view", "viewID", string(viewID))
			return
		}
		rl.views[viewID] = v
		rl.pages.AddPage(string(viewID), v.GetPrimitive(), true, false)
	}

	if rl.activeView != nil && rl.activeView != v {
		rl.activeView.OnBlur()
	}

	rl.pages.SwitchToPage(string(viewID))
	rl.activeView = v

	rl.header.SetStatus(string(viewID))
	rl.header.SetActions(rl.headerActionsFor(v))

	if rl.onViewActivated != nil {
		rl.onViewActivated(v)
	}

	v.OnFocus()
	rl.app.SetFocus(v.GetPrimitive())
}

// headerActionsFor merges global and view-specific header hints
func (rl *RootLayout) headerActionsFor(v controller.View) []controller.Action {
	actions := controller.DefaultGlobalActions().GetHeaderActions()
	if registry := v.GetActionRegistry(); registry != nil {
		actions = append(actions, registry.GetHeaderActions()...)
	}
	return actions
}

// ActiveView returns the currently displayed view
func (rl *RootLayout) ActiveView() controller.View {
	return rl.activeView
}

// Header returns the header widget
func (rl *RootLayout) Header() *HeaderWidget {
	return rl.header
}

// IsHeaderVisible reports whether the header bar is shown
func (rl *RootLayout) IsHeaderVisible() bool {
	return rl.headerVisible
}

// ToggleHeader flips header visibility and rebuilds the layout
func (rl *RootLayout) ToggleHeader() {
	rl.headerVisible = !rl.headerVisible
	rl.rebuildLayout()
}

// rebuildLayout rebuilds the root flex based on current header visibility
func (rl *RootLayout) rebuildLayout() {
	rl.root.Clear()

	if rl.headerVisible {
		rl.root.AddItem(rl.header, HeaderHeight, 0, false)
	}
	rl.root.AddItem(rl.pages, 0, 1, true)
}

// GetPrimitive returns the root tview primitive for app.SetRoot()
func (rl *RootLayout) GetPrimitive() tview.Primitive {
	return rl.root
}
