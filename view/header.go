package view

import (
	"fmt"
	"strings"

	"github.com/boolean-maybe/trialscope/config"
	"github.com/boolean-maybe/trialscope/controller"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// HeaderHeight is the number of terminal rows the header occupies
const HeaderHeight = 2

// HeaderWidget is the persistent top bar: app identity and status on the
// first line, key hints for the active view on the second.
type HeaderWidget struct {
	*tview.TextView
	status  string
	actions []controller.Action
}

// NewHeaderWidget creates the header bar
func NewHeaderWidget() *HeaderWidget {
	tv := tview.NewTextView().SetDynamicColors(true)
	tv.SetBackgroundColor(tcell.ColorDefault)
	h := &HeaderWidget{TextView: tv}
	h.render()
	return h
}

// SetStatus updates the status text shown next to the app name
func (h *HeaderWidget) SetStatus(status string) {
	h.status = status
	h.render()
}

// SetActions replaces the key hints shown for the active view
func (h *HeaderWidget) SetActions(actions []controller.Action) {
	h.actions = actions
	h.render()
}

func (h *HeaderWidget) render() {
	colors := config.GetColors()

	var b strings.Builder
	fmt.Fprintf(&b, " %strialscope[-] %s%s[-]", colors.HeaderKeyText, colors.HeaderLabelText, config.Version)
	if h.status != "" {
		fmt.Fprintf(&b, "  %s│[-] %s", colors.HeaderLabelText, tview.Escape(h.status))
	}
	b.WriteByte('\n')

	for i, a := range h.actions {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, " %s%s[-] %s%s[-]", colors.HeaderKeyText, keyName(a), colors.HeaderLabelText, a.Label)
	}

	h.SetText(b.String())
}

// keyName formats an action's key binding for display
func keyName(a controller.Action) string {
	if a.Key == tcell.KeyRune {
		return string(a.Rune)
	}
	if name, ok := tcell.KeyNames[a.Key]; ok {
		return name
	}
	return "?"
}
