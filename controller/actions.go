package controller

import (
	"github.com/gdamore/tcell/v2"
)

// ActionRegistry maps keyboard shortcuts to actions and matches key events.

// ActionID identifies a specific action
type ActionID string

// ActionID values for global actions (available in all views).
const (
	ActionBack         ActionID = "back"
	ActionQuit         ActionID = "quit"
	ActionToggleHeader ActionID = "toggle_header"
	ActionShowBuilder  ActionID = "show_builder"
	ActionShowResults  ActionID = "show_results"
	ActionShowInsights ActionID = "show_insights"
)

// ActionID values for the builder view.
const (
	ActionNextCategory ActionID = "next_category"
	ActionPrevCategory ActionID = "prev_category"
	ActionModeAnd      ActionID = "mode_and"
	ActionModeOr       ActionID = "mode_or"
	ActionModeNot      ActionID = "mode_not"
	ActionModeNestAnd  ActionID = "mode_nest_and"
	ActionModeNestOr   ActionID = "mode_nest_or"
	ActionEnterTerm    ActionID = "enter_term"
	ActionToggleTerm   ActionID = "toggle_term"
	ActionRemoveTerm   ActionID = "remove_term"
	ActionClearTree    ActionID = "clear_tree"
	ActionClearAll     ActionID = "clear_all"
	ActionSubmit       ActionID = "submit"
)

// ActionID values for the results view.
const (
	ActionNextPage    ActionID = "next_page"
	ActionPrevPage    ActionID = "prev_page"
	ActionGetInsights ActionID = "get_insights"
)

// Action represents a keyboard shortcut binding
type Action struct {
	ID           ActionID
	Key          tcell.Key
	Rune         rune // for letter keys (when Key == tcell.KeyRune)
	Label        string
	Modifier     tcell.ModMask
	ShowInHeader bool // whether to display in header bar
}

// ActionRegistry holds the available actions for a view.
// Uses a space-time tradeoff: stores actions in 3 places for different purposes:
// - actions slice preserves registration order (needed for header display)
// - byKey/byRune maps provide O(1) lookups for keyboard matching (vs O(n) linear search)
type ActionRegistry struct {
	actions []Action             // All registered actions in order
	byKey   map[tcell.Key]Action // Fast lookup for special keys (arrow keys, function keys, etc.)
	byRune  map[rune]Action      // Fast lookup for character keys (letters, symbols)
}

// NewActionRegistry creates a new action registry
func NewActionRegistry() *ActionRegistry {
	return &ActionRegistry{
		actions: make([]Action, 0),
		byKey:   make(map[tcell.Key]Action),
		byRune:  make(map[rune]Action),
	}
}

// Register adds an action to the registry
func (r *ActionRegistry) Register(action Action) {
	r.actions = append(r.actions, action)
	if action.Key == tcell.KeyRune {
		r.byRune[action.Rune] = action
	} else {
		r.byKey[action.Key] = action
	}
}

// Merge adds all actions from another registry into this one.
// Actions from the other registry are appended to preserve order.
// If there are key conflicts, the other registry's actions take precedence.
func (r *ActionRegistry) Merge(other *ActionRegistry) {
	for _, action := range other.actions {
		r.Register(action)
	}
}

// GetActions returns all registered actions
func (r *ActionRegistry) GetActions() []Action {
	return r.actions
}

// GetHeaderActions returns only actions marked for header display
func (r *ActionRegistry) GetHeaderActions() []Action {
	var result []Action
	for _, a := range r.actions {
		if a.ShowInHeader {
			result = append(result, a)
		}
	}
	return result
}

// Match finds an action matching the given key event
func (r *ActionRegistry) Match(event *tcell.EventKey) *Action {
	// normalize modifier (ignore caps lock, num lock, etc.)
	mod := event.Modifiers() & (tcell.ModShift | tcell.ModCtrl | tcell.ModAlt | tcell.ModMeta)

	for i := range r.actions {
		action := &r.actions[i]

		if event.Key() == tcell.KeyRune {
			// for printable characters, match by rune first
			if action.Key == tcell.KeyRune && action.Rune == event.Rune() {
				// if action has explicit modifiers, require exact match
				if action.Modifier != 0 && action.Modifier != mod {
					continue // modifier mismatch, try next action
				}
				return action
			}
		} else {
			// for special keys, require exact modifier match
			if action.Key == event.Key() && action.Modifier == mod {
				return action
			}
			// Handle Ctrl+letter: tcell sends key='A'-'Z' with ModCtrl,
			// but actions may register KeyCtrlA-KeyCtrlZ (1-26)
			if mod == tcell.ModCtrl && action.Modifier == tcell.ModCtrl {
				var ctrlKeyCode tcell.Key
				if event.Key() >= 'A' && event.Key() <= 'Z' {
					ctrlKeyCode = event.Key() - 'A' + 1
				} else if event.Key() >= 'a' && event.Key() <= 'z' {
					ctrlKeyCode = event.Key() - 'a' + 1
				}
				if ctrlKeyCode != 0 && ctrlKeyCode == action.Key {
					return action
				}
			}
		}
	}
	return nil
}

// DefaultGlobalActions returns common actions available in all views
func DefaultGlobalActions() *ActionRegistry {
	r := NewActionRegistry()
	r.Register(Action{ID: ActionBack, Key: tcell.KeyEscape, Label: "Builder", ShowInHeader: true})
	r.Register(Action{ID: ActionQuit, Key: tcell.KeyRune, Rune: 'q', Label: "Quit", ShowInHeader: true})
	r.Register(Action{ID: ActionShowBuilder, Key: tcell.KeyRune, Rune: '1', Label: "Builder"})
	r.Register(Action{ID: ActionShowResults, Key: tcell.KeyRune, Rune: '2', Label: "Results"})
	r.Register(Action{ID: ActionShowInsights, Key: tcell.KeyRune, Rune: '3', Label: "Insights"})
	r.Register(Action{ID: ActionToggleHeader, Key: tcell.KeyF10, Label: "Hide Header", ShowInHeader: true})
	return r
}

// BuilderViewActions returns the canonical action registry for the builder view.
// Single source of truth for both input handling and header display.
func BuilderViewActions() *ActionRegistry {
	r := NewActionRegistry()

	r.Register(Action{ID: ActionNextCategory, Key: tcell.KeyTab, Label: "Next category", ShowInHeader: true})
	r.Register(Action{ID: ActionPrevCategory, Key: tcell.KeyBacktab, Label: "Prev category"})
	r.Register(Action{ID: ActionModeAnd, Key: tcell.KeyRune, Rune: 'a', Label: "AND", ShowInHeader: true})
	r.Register(Action{ID: ActionModeOr, Key: tcell.KeyRune, Rune: 'o', Label: "OR", ShowInHeader: true})
	r.Register(Action{ID: ActionModeNot, Key: tcell.KeyRune, Rune: 'n', Label: "NOT", ShowInHeader: true})
	r.Register(Action{ID: ActionModeNestAnd, Key: tcell.KeyRune, Rune: 'A', Label: "Nest AND", ShowInHeader: true})
	r.Register(Action{ID: ActionModeNestOr, Key: tcell.KeyRune, Rune: 'O', Label: "Nest OR", ShowInHeader: true})
	r.Register(Action{ID: ActionEnterTerm, Key: tcell.KeyRune, Rune: '/', Label: "Term", ShowInHeader: true})
	r.Register(Action{ID: ActionToggleTerm, Key: tcell.KeyRune, Rune: 't', Label: "Toggle", ShowInHeader: true})
	r.Register(Action{ID: ActionRemoveTerm, Key: tcell.KeyRune, Rune: 'x', Label: "Remove", ShowInHeader: true})
	r.Register(Action{ID: ActionClearTree, Key: tcell.KeyRune, Rune: 'c', Label: "Clear", ShowInHeader: true})
	r.Register(Action{ID: ActionClearAll, Key: tcell.KeyRune, Rune: 'C', Label: "Clear all"})
	r.Register(Action{ID: ActionSubmit, Key: tcell.KeyEnter, Label: "Search", ShowInHeader: true})

	return r
}

// ResultsViewActions returns the canonical action registry for the results view.
func ResultsViewActions() *ActionRegistry {
	r := NewActionRegistry()

	r.Register(Action{ID: ActionPrevPage, Key: tcell.KeyLeft, Label: "← Page"})
	r.Register(Action{ID: ActionNextPage, Key: tcell.KeyRight, Label: "Page →"})
	r.Register(Action{ID: ActionPrevPage, Key: tcell.KeyRune, Rune: 'p', Label: "Prev page", ShowInHeader: true})
	r.Register(Action{ID: ActionNextPage, Key: tcell.KeyRune, Rune: 'n', Label: "Next page", ShowInHeader: true})
	r.Register(Action{ID: ActionGetInsights, Key: tcell.KeyRune, Rune: 'i', Label: "Insights", ShowInHeader: true})

	return r
}

// InsightsViewActions returns the action registry for the insights view.
// The view is read-only; global actions cover everything it needs.
func InsightsViewActions() *ActionRegistry {
	return NewActionRegistry()
}
