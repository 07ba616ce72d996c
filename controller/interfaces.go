package controller

import (
	"github.com/boolean-maybe/trialscope/model"

	"github.com/rivo/tview"
)

// View and ViewFactory interfaces decouple controllers from view implementations.

// View represents a renderable view with its action registry
type View interface {
	// GetPrimitive returns the tview primitive for this view
	GetPrimitive() tview.Primitive

	// GetActionRegistry returns the actions available in this view
	GetActionRegistry() *ActionRegistry

	// GetViewID returns the identifier for this view type
	GetViewID() model.ViewID

	// OnFocus is called when the view becomes active
	OnFocus()

	// OnBlur is called when the view becomes inactive
	OnBlur()
}

// ViewFactory creates views on demand
type ViewFactory interface {
	// CreateView instantiates a view by ID
	CreateView(viewID model.ViewID) View
}

// PromptView is a view that owns a term input prompt
type PromptView interface {
	View

	// ShowPrompt reveals the prompt and returns the primitive to focus
	ShowPrompt() tview.Primitive

	// HidePrompt hides the prompt
	HidePrompt()

	// IsPromptFocused returns whether the prompt currently has focus
	IsPromptFocused() bool

	// SetPromptLabel changes the prompt's label text
	SetPromptLabel(label string)

	// SetPromptSubmitHandler sets the callback for when a term is submitted
	SetPromptSubmitHandler(handler func(text string))

	// SetFocusSetter sets the callback for requesting focus changes
	SetFocusSetter(setter func(p tview.Primitive))
}

// PageableView is a view whose content is a paginated result set
type PageableView interface {
	View

	// CurrentPage returns the 1-based page the view is showing
	CurrentPage() int
}
