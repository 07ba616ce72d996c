package component

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/boolean-maybe/trialscope/config"
)

// TermPrompt is the custom-term input field with auto-completion hints fed
// by the suggestion catalog. When the typed prefix matches exactly one
// catalog term, the remainder renders as a greyed hint; Tab accepts it.
type TermPrompt struct {
	*tview.InputField
	words       []string
	currentHint string
	onSubmit    func(text string)
	onCancel    func()
	hintColor   tcell.Color
}

// NewTermPrompt creates a term prompt completing against the given words.
func NewTermPrompt(words []string) *TermPrompt {
	inputField := tview.NewInputField()
	inputField.SetFieldBackgroundColor(config.GetContentBackgroundColor())
	inputField.SetFieldTextColor(config.GetContentTextColor())

	colors := config.GetColors()
	inputField.SetLabelColor(colors.PromptLabelColor)

	return &TermPrompt{
		InputField: inputField,
		words:      words,
		hintColor:  colors.CompletionHintColor,
	}
}

// SetWords replaces the completion word list.
func (p *TermPrompt) SetWords(words []string) *TermPrompt {
	p.words = words
	p.updateHint()
	return p
}

// SetSubmitHandler sets the callback for when Enter is pressed. The typed
// text is trimmed; empty submissions are dropped.
func (p *TermPrompt) SetSubmitHandler(handler func(text string)) *TermPrompt {
	p.onSubmit = handler
	return p
}

// SetCancelHandler sets the callback for when Escape is pressed.
func (p *TermPrompt) SetCancelHandler(handler func()) *TermPrompt {
	p.onCancel = handler
	return p
}

// SetLabel sets the label displayed before the input field.
func (p *TermPrompt) SetLabel(label string) *TermPrompt {
	p.InputField.SetLabel(label)
	return p
}

// Clear clears the input text and hint.
func (p *TermPrompt) Clear() *TermPrompt {
	p.SetText("")
	p.currentHint = ""
	return p
}

// updateHint recalculates the completion hint for the current input.
// Matching is a case-insensitive prefix test; the hint only appears when
// exactly one catalog word matches.
func (p *TermPrompt) updateHint() {
	text := p.GetText()
	if text == "" {
		p.currentHint = ""
		return
	}

	textLower := strings.ToLower(text)
	var match string
	count := 0
	for _, word := range p.words {
		if strings.HasPrefix(strings.ToLower(word), textLower) {
			match = word
			count++
			if count > 1 {
				break
			}
		}
	}

	if count == 1 && len(match) > len(text) {
		// remaining characters, preserving the catalog's casing
		p.currentHint = match[len(text):]
	} else {
		p.currentHint = ""
	}
}

// Draw renders the input field and the completion hint.
func (p *TermPrompt) Draw(screen tcell.Screen) {
	p.InputField.Draw(screen)

	if p.currentHint == "" {
		return
	}

	x, y, width, height := p.GetRect()
	if width <= 0 || height <= 0 {
		return
	}

	// Hint starts after the label and the typed text
	hintX := x + len(p.GetLabel()) + len(p.GetText())
	style := tcell.StyleDefault.Foreground(p.hintColor)
	for i, ch := range p.currentHint {
		if hintX+i >= x+width {
			break
		}
		screen.SetContent(hintX+i, y, ch, nil, style)
	}
}

// InputHandler handles keyboard input for the term prompt.
func (p *TermPrompt) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return p.WrapInputHandler(func(event *tcell.EventKey, setFocus func(primitive tview.Primitive)) {
		switch event.Key() {
		case tcell.KeyTab:
			// Accept the hint if present; Tab never leaves the field
			if p.currentHint != "" {
				p.SetText(p.GetText() + p.currentHint)
				p.currentHint = ""
			}
			return

		case tcell.KeyEnter:
			text := strings.TrimSpace(p.GetText())
			if text != "" && p.onSubmit != nil {
				p.onSubmit(text)
			}
			p.Clear()
			return

		case tcell.KeyEscape:
			p.Clear()
			if p.onCancel != nil {
				p.onCancel()
			}
			return

		default:
			handler := p.InputField.InputHandler()
			if handler != nil {
				handler(event, setFocus)
			}
			p.updateHint()
		}
	})
}
