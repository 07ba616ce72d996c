package view

import (
	"fmt"

	"github.com/boolean-maybe/trialscope/catalog"
	"github.com/boolean-maybe/trialscope/component"
	"github.com/boolean-maybe/trialscope/config"
	"github.com/boolean-maybe/trialscope/controller"
	"github.com/boolean-maybe/trialscope/model"
	"github.com/boolean-maybe/trialscope/query"

	"github.com/rivo/tview"
)

// BuilderView is the query editing screen: one pane per category with the
// serialized tree, a suggestion chip list for the active category, a term
// prompt, and the combined expression preview.
type BuilderView struct {
	root        *tview.Flex
	panes       [len(model.Categories)]*tview.TextView
	suggestions *component.TermList
	prompt      *component.TermPrompt
	combined    *tview.TextView
	status      *tview.TextView

	builder *model.BuilderState
	ctl     *controller.BuilderController
	terms   *catalog.Catalog

	listenerID  int
	promptShown bool
	focusSetter func(p tview.Primitive)
}

// NewBuilderView creates the builder view
func NewBuilderView(builder *model.BuilderState, ctl *controller.BuilderController, terms *catalog.Catalog) *BuilderView {
	bv := &BuilderView{
		builder: builder,
		ctl:     ctl,
		terms:   terms,
	}
	bv.build()

	bv.listenerID = builder.AddListener(bv.refresh)
	ctl.SetOnChanged(bv.refresh)

	return bv
}

func (bv *BuilderView) build() {
	colors := config.GetColors()

	paneRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	for i, cat := range model.Categories {
		pane := tview.NewTextView().SetDynamicColors(true).SetWrap(true)
		pane.SetBorder(true)
		pane.SetTitle(" " + cat.String() + " ")
		pane.SetTitleColor(colors.BuilderPaneTitleText)
		bv.panes[i] = pane
		paneRow.AddItem(pane, 0, 1, false)
	}

	bv.suggestions = component.NewTermList(nil).
		SetColors(colors.TermChipForeground, colors.TermChipBackground).
		SetSelectedColors(colors.TermChipSelectedForeground, colors.TermChipSelectedBackground)
	bv.suggestions.SetBorder(true)
	bv.suggestions.SetTitle(" suggestions ")

	bv.prompt = component.NewTermPrompt(nil)
	bv.prompt.SetCancelHandler(func() {
		bv.HidePrompt()
	})

	bv.combined = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	bv.combined.SetBorder(true)
	bv.combined.SetTitle(" query ")

	bv.status = tview.NewTextView().SetDynamicColors(true)

	bv.root = tview.NewFlex().SetDirection(tview.FlexRow)
	bv.rebuildLayout(paneRow)

	bv.refresh()
}

// rebuildLayout rebuilds the root layout based on prompt visibility
func (bv *BuilderView) rebuildLayout(paneRow *tview.Flex) {
	bv.root.Clear()
	bv.root.AddItem(paneRow, 0, 2, false)
	bv.root.AddItem(bv.suggestions, 0, 1, false)
	if bv.promptShown {
		bv.root.AddItem(bv.prompt, 1, 0, true)
	}
	bv.root.AddItem(bv.combined, 4, 0, false)
	bv.root.AddItem(bv.status, 1, 0, false)
}

// paneRow digs the category pane row back out of the root flex so layout
// rebuilds do not recreate the panes
func (bv *BuilderView) paneRow() *tview.Flex {
	item := bv.root.GetItem(0)
	if row, ok := item.(*tview.Flex); ok {
		return row
	}
	return tview.NewFlex()
}

// refresh re-renders every pane from current model state
func (bv *BuilderView) refresh() {
	colors := config.GetColors()
	active := bv.ctl.ActiveCategory()

	for i, cat := range model.Categories {
		pane := bv.panes[i]
		if cat == active {
			pane.SetBorderColor(colors.BuilderActivePaneBorder)
		} else {
			pane.SetBorderColor(colors.BuilderPaneBorder)
		}

		preview := bv.builder.Preview(cat)
		if preview == "" {
			pane.SetText(colors.BuilderOperatorText + "(no terms)[-]")
		} else {
			pane.SetText(colors.BuilderPreviewText + tview.Escape(preview) + "[-]")
		}
	}

	suggested := bv.terms.Terms(active)
	selected := make(map[string]bool)
	for _, term := range suggested {
		if bv.builder.Contains(active, term) {
			selected[term] = true
		}
	}
	bv.suggestions.SetTerms(suggested).SetSelected(selected)
	bv.prompt.SetWords(suggested)

	if combined := bv.builder.Combined(); combined == "" {
		bv.combined.SetText(colors.BuilderOperatorText + "(empty query)[-]")
	} else {
		bv.combined.SetText(colors.BuilderCombinedText + tview.Escape(combined) + "[-]")
	}

	bv.status.SetText(fmt.Sprintf(" %smode[-] %s  %scategory[-] %s",
		colors.HeaderLabelText, modeLabel(bv.ctl.Mode()),
		colors.HeaderLabelText, active.String()))
}

// modeLabel formats an insert mode for the status line
func modeLabel(mode query.InsertMode) string {
	switch mode {
	case query.AppendAnd:
		return "AND"
	case query.AppendOr:
		return "OR"
	case query.AppendNot:
		return "NOT"
	case query.NestAnd:
		return "nest AND"
	case query.NestOr:
		return "nest OR"
	default:
		return "?"
	}
}

// GetPrimitive returns the view's root primitive
func (bv *BuilderView) GetPrimitive() tview.Primitive {
	return bv.root
}

// GetActionRegistry returns the builder view's actions
func (bv *BuilderView) GetActionRegistry() *controller.ActionRegistry {
	return controller.BuilderViewActions()
}

// GetViewID returns the builder view identifier
func (bv *BuilderView) GetViewID() model.ViewID {
	return model.BuilderViewID
}

// OnFocus re-renders when the view becomes active
func (bv *BuilderView) OnFocus() {
	bv.refresh()
}

// OnBlur is called when the view becomes inactive
func (bv *BuilderView) OnBlur() {}

// Cleanup removes the model listener
func (bv *BuilderView) Cleanup() {
	bv.builder.RemoveListener(bv.listenerID)
}

// ShowPrompt reveals the term prompt and returns it for focusing
func (bv *BuilderView) ShowPrompt() tview.Primitive {
	bv.promptShown = true
	bv.prompt.Clear()
	bv.rebuildLayout(bv.paneRow())
	return bv.prompt
}

// HidePrompt hides the term prompt and returns focus to the view
func (bv *BuilderView) HidePrompt() {
	bv.promptShown = false
	bv.rebuildLayout(bv.paneRow())
	if bv.focusSetter != nil {
		bv.focusSetter(bv.root)
	}
}

// IsPromptFocused reports whether the prompt currently has tview focus
func (bv *BuilderView) IsPromptFocused() bool {
	return bv.promptShown && bv.prompt.HasFocus()
}

// SetPromptLabel changes the prompt's label text
func (bv *BuilderView) SetPromptLabel(label string) {
	bv.prompt.SetLabel(label)
}

// SetPromptSubmitHandler sets the callback for submitted terms. The prompt
// stays open for rapid entry; Escape closes it.
func (bv *BuilderView) SetPromptSubmitHandler(handler func(text string)) {
	bv.prompt.SetSubmitHandler(handler)
}

// SetFocusSetter sets the callback for requesting focus changes
func (bv *BuilderView) SetFocusSetter(setter func(p tview.Primitive)) {
	bv.focusSetter = setter
}
