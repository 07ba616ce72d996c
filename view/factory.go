package view

import (
	"log/slog"

	"github.com/boolean-maybe/trialscope/catalog"
	"github.com/boolean-maybe/trialscope/controller"
	"github.com/boolean-maybe/trialscope/model"
	"github.com/boolean-maybe/trialscope/view/renderer"
)

// ViewFactory instantiates views by ID, injecting the shared models and
// collaborators each view needs.
type ViewFactory struct {
	builder     *model.BuilderState
	searchState *model.SearchState
	builderCtl  *controller.BuilderController
	terms       *catalog.Catalog
	renderer    renderer.MarkdownRenderer
}

// NewViewFactory creates a view factory
func NewViewFactory(
	builder *model.BuilderState,
	searchState *model.SearchState,
	builderCtl *controller.BuilderController,
	terms *catalog.Catalog,
) *ViewFactory {
	return &ViewFactory{
		builder:     builder,
		searchState: searchState,
		builderCtl:  builderCtl,
		terms:       terms,
		renderer:    renderer.NewMarkdownRenderer(),
	}
}

// CreateView instantiates a view by ID
func (f *ViewFactory) CreateView(viewID model.ViewID) controller.View {
	switch viewID {
	case model.BuilderViewID:
		return NewBuilderView(f.builder, f.builderCtl, f.terms)
	case model.ResultsViewID:
		return NewResultsView(f.searchState)
	case model.InsightsViewID:
		return NewInsightsView(f.searchState, f.renderer)
	default:
		slog.Error("unknown view ID", "viewID", string(viewID))
		return nil
	}
}
