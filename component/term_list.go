package component

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/boolean-maybe/trialscope/config"
)

// TermList displays suggested terms as space-separated chips with word
// wrapping. Terms are never broken in the middle; wrapping occurs at chip
// boundaries. Terms present in the active query tree render with the
// selected style so the list doubles as an on/off indicator.
type TermList struct {
	*tview.Box
	terms       []string
	selected    map[string]bool
	chipFg      tcell.Color
	chipBg      tcell.Color
	selectedFg  tcell.Color
	selectedBg  tcell.Color
	fillerStyle tcell.Style
}

// NewTermList creates a new TermList component.
func NewTermList(terms []string) *TermList {
	box := tview.NewBox()
	box.SetBorder(false)
	colors := config.GetColors()
	return &TermList{
		Box:         box,
		terms:       terms,
		selected:    make(map[string]bool),
		chipFg:      colors.TermChipForeground,
		chipBg:      colors.TermChipBackground,
		selectedFg:  colors.TermChipSelectedForeground,
		selectedBg:  colors.TermChipSelectedBackground,
		fillerStyle: tcell.StyleDefault.Background(config.GetContentBackgroundColor()),
	}
}

// SetTerms updates the list of terms to display.
func (l *TermList) SetTerms(terms []string) *TermList {
	l.terms = terms
	return l
}

// GetTerms returns the current list of terms.
func (l *TermList) GetTerms() []string {
	return l.terms
}

// SetSelected replaces the set of terms shown in the selected style.
func (l *TermList) SetSelected(selected map[string]bool) *TermList {
	if selected == nil {
		selected = make(map[string]bool)
	}
	l.selected = selected
	return l
}

// IsSelected reports whether a term is currently marked selected.
func (l *TermList) IsSelected(term string) bool {
	return l.selected[term]
}

// SetColors sets the chip foreground and background colors.
func (l *TermList) SetColors(fg, bg tcell.Color) *TermList {
	l.chipFg = fg
	l.chipBg = bg
	return l
}

// SetSelectedColors sets the colors for selected chips.
func (l *TermList) SetSelectedColors(fg, bg tcell.Color) *TermList {
	l.selectedFg = fg
	l.selectedBg = bg
	return l
}

// Draw renders the TermList component.
func (l *TermList) Draw(screen tcell.Screen) {
	l.DrawForSubclass(screen, l)
	x, y, width, height := l.GetInnerRect()

	if width <= 0 || height <= 0 {
		return
	}

	chipStyle := tcell.StyleDefault.Foreground(l.chipFg).Background(l.chipBg)
	selectedStyle := tcell.StyleDefault.Foreground(l.selectedFg).Background(l.selectedBg)

	currentX := x
	currentY := y

	for i, term := range l.terms {
		termLen := len(term)

		// Wrap to the next line when the chip doesn't fit
		if currentX > x && currentX+termLen > x+width {
			currentY++
			currentX = x
			if currentY >= y+height {
				break
			}
		}

		// Truncate chips wider than the whole line (very narrow displays)
		if termLen > width {
			term = term[:width]
			termLen = width
		}

		style := chipStyle
		if l.selected[l.terms[i]] {
			style = selectedStyle
		}

		for j, ch := range term {
			if currentX+j < x+width {
				screen.SetContent(currentX+j, currentY, ch, nil, style)
			}
		}
		currentX += termLen

		// Separator space between chips
		if i < len(l.terms)-1 && currentX < x+width {
			screen.SetContent(currentX, currentY, ' ', nil, l.fillerStyle)
			currentX++
		}
	}
}
