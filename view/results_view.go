package view

import (
	"fmt"
	"strings"

	"github.com/boolean-maybe/trialscope/config"
	"github.com/boolean-maybe/trialscope/controller"
	"github.com/boolean-maybe/trialscope/model"
	"github.com/boolean-maybe/trialscope/search"

	"github.com/rivo/tview"
)

// facetBarWidth is the widest a facet count bar gets, in cells
const facetBarWidth = 12

// ResultsView shows one page of search hits in a table with a facet sidebar.
type ResultsView struct {
	root        *tview.Flex
	table       *tview.Table
	facets      *tview.TextView
	status      *tview.TextView
	searchState *model.SearchState
	listenerID  int
}

// NewResultsView creates the results view
func NewResultsView(searchState *model.SearchState) *ResultsView {
	rv := &ResultsView{searchState: searchState}
	rv.build()
	rv.listenerID = searchState.AddListener(rv.refresh)
	return rv
}

func (rv *ResultsView) build() {
	rv.table = tview.NewTable().
		SetFixed(1, 0).
		SetSelectable(true, false)
	rv.table.SetBorder(true)
	rv.table.SetTitle(" studies ")

	rv.facets = tview.NewTextView().SetDynamicColors(true)
	rv.facets.SetBorder(true)
	rv.facets.SetTitle(" facets ")

	rv.status = tview.NewTextView().SetDynamicColors(true)

	content := tview.NewFlex().SetDirection(tview.FlexColumn)
	content.AddItem(rv.table, 0, 3, true)
	content.AddItem(rv.facets, 0, 1, false)

	rv.root = tview.NewFlex().SetDirection(tview.FlexRow)
	rv.root.AddItem(content, 0, 1, true)
	rv.root.AddItem(rv.status, 1, 0, false)

	rv.refresh()
}

// refresh re-renders table, facets and status from search state
func (rv *ResultsView) refresh() {
	colors := config.GetColors()

	rv.table.Clear()
	for col, title := range []string{"ID", "Title", "Condition", "Intervention", "Phase", "Status"} {
		cell := tview.NewTableCell(colors.ResultsHeaderText + title + "[-]").
			SetSelectable(false).
			SetExpansion(expansionFor(col))
		rv.table.SetCell(0, col, cell)
	}

	if err := rv.searchState.Err(); err != nil {
		rv.facets.SetText("")
		rv.status.SetText(fmt.Sprintf(" %ssearch failed:[-] %s", colors.ResultsStatusError, tview.Escape(err.Error())))
		return
	}

	page := rv.searchState.Results()
	if page == nil {
		rv.facets.SetText("")
		rv.status.SetText(" no search submitted yet")
		return
	}

	for row, study := range page.Studies {
		values := []string{study.ID, study.Title, study.Condition, study.Intervention, study.Phase, study.Status}
		for col, v := range values {
			cell := tview.NewTableCell(colors.ResultsRowText + tview.Escape(v) + "[-]").
				SetExpansion(expansionFor(col))
			rv.table.SetCell(row+1, col, cell)
		}
	}
	if len(page.Studies) > 0 {
		rv.table.Select(1, 0)
	}

	rv.facets.SetText(renderFacets(page.Facets, colors))
	rv.status.SetText(fmt.Sprintf(" %d studies  page %d/%d  %s",
		page.Total, page.Page, pageCount(page), tview.Escape(rv.searchState.Expr())))
}

// expansionFor gives the title column the spare width
func expansionFor(col int) int {
	if col == 1 {
		return 3
	}
	return 1
}

// pageCount derives the number of pages from total and page size
func pageCount(page *search.ResultPage) int {
	if page.PageSize <= 0 {
		return 1
	}
	n := (page.Total + page.PageSize - 1) / page.PageSize
	if n < 1 {
		n = 1
	}
	return n
}

// renderFacets renders facet buckets as labeled count bars
func renderFacets(facets []search.Facet, colors config.ColorConfig) string {
	var b strings.Builder
	for i, facet := range facets {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s%s[-]\n", colors.ResultsHeaderText, tview.Escape(facet.Field))

		max := 0
		for _, c := range facet.Counts {
			if c.Count > max {
				max = c.Count
			}
		}
		for _, c := range facet.Counts {
			fmt.Fprintf(&b, " %-14s %s%s[-] %d\n",
				tview.Escape(truncate(c.Value, 14)),
				colors.ResultsFacetBar, facetBar(c.Count, max), c.Count)
		}
	}
	return b.String()
}

// facetBar scales a count against the largest bucket
func facetBar(count, max int) string {
	if max <= 0 || count <= 0 {
		return ""
	}
	width := count * facetBarWidth / max
	if width < 1 {
		width = 1
	}
	return strings.Repeat("▇", width)
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// GetPrimitive returns the view's root primitive
func (rv *ResultsView) GetPrimitive() tview.Primitive {
	return rv.root
}

// GetActionRegistry returns the results view's actions
func (rv *ResultsView) GetActionRegistry() *controller.ActionRegistry {
	return controller.ResultsViewActions()
}

// GetViewID returns the results view identifier
func (rv *ResultsView) GetViewID() model.ViewID {
	return model.ResultsViewID
}

// OnFocus re-renders when the view becomes active
func (rv *ResultsView) OnFocus() {
	rv.refresh()
}

// OnBlur is called when the view becomes inactive
func (rv *ResultsView) OnBlur() {}

// Cleanup removes the model listener
func (rv *ResultsView) Cleanup() {
	rv.searchState.RemoveListener(rv.listenerID)
}

// CurrentPage returns the 1-based page currently displayed
func (rv *ResultsView) CurrentPage() int {
	if page := rv.searchState.Results(); page != nil && page.Page > 0 {
		return page.Page
	}
	return 1
}
