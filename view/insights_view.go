package view

import (
	"github.com/boolean-maybe/trialscope/config"
	"github.com/boolean-maybe/trialscope/controller"
	"github.com/boolean-maybe/trialscope/model"
	"github.com/boolean-maybe/trialscope/view/renderer"

	"github.com/rivo/tview"
)

// InsightsView shows the glamour-rendered markdown analysis for the last
// submitted query.
type InsightsView struct {
	root        *tview.TextView
	searchState *model.SearchState
	renderer    renderer.MarkdownRenderer
	listenerID  int
	lastInsight string
}

// NewInsightsView creates the insights view
func NewInsightsView(searchState *model.SearchState, mdRenderer renderer.MarkdownRenderer) *InsightsView {
	iv := &InsightsView{
		searchState: searchState,
		renderer:    mdRenderer,
	}

	iv.root = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWrap(true)
	iv.root.SetBorder(true)
	iv.root.SetTitle(" insights ")

	iv.listenerID = searchState.AddListener(iv.refresh)
	iv.refresh()

	return iv
}

// refresh re-renders the insight markdown when it changes
func (iv *InsightsView) refresh() {
	colors := config.GetColors()

	insight := iv.searchState.Insight()
	if insight == "" {
		iv.lastInsight = ""
		iv.root.SetText(colors.HeaderLabelText + " no insights yet, submit a query and press i on the results[-]")
		return
	}
	if insight == iv.lastInsight {
		return
	}
	iv.lastInsight = insight

	rendered, err := iv.renderer.Render(insight)
	if err != nil {
		// fall back to the raw markdown rather than showing nothing
		rendered = insight
	}
	iv.root.SetText(tview.TranslateANSI(rendered))
	iv.root.ScrollToBeginning()
}

// GetPrimitive returns the view's root primitive
func (iv *InsightsView) GetPrimitive() tview.Primitive {
	return iv.root
}

// GetActionRegistry returns the insights view's actions
func (iv *InsightsView) GetActionRegistry() *controller.ActionRegistry {
	return controller.InsightsViewActions()
}

// GetViewID returns the insights view identifier
func (iv *InsightsView) GetViewID() model.ViewID {
	return model.InsightsViewID
}

// OnFocus re-renders when the view becomes active
func (iv *InsightsView) OnFocus() {
	iv.refresh()
}

// OnBlur is called when the view becomes inactive
func (iv *InsightsView) OnBlur() {}

// Cleanup removes the model listener
func (iv *InsightsView) Cleanup() {
	iv.searchState.RemoveListener(iv.listenerID)
}
