package config

// Color and style definitions for the UI: tcell colors and tview color tags.

import (
	"github.com/gdamore/tcell/v2"
)

// ColorConfig holds all color and style definitions per view
type ColorConfig struct {
	// Builder view colors
	BuilderPaneBorder       tcell.Color
	BuilderActivePaneBorder tcell.Color
	BuilderPaneTitleText    tcell.Color
	BuilderPreviewText      string // tview color string like "[white]"
	BuilderOperatorText     string // tview color string like "[yellow]"
	BuilderCombinedText     string // tview color string like "[green]"

	// Term chip colors
	TermChipForeground         tcell.Color
	TermChipBackground         tcell.Color
	TermChipSelectedForeground tcell.Color
	TermChipSelectedBackground tcell.Color

	// Prompt colors
	PromptLabelColor    tcell.Color
	CompletionHintColor tcell.Color

	// Results view colors
	ResultsHeaderText  string // tview color string like "[yellow]"
	ResultsRowText     string // tview color string like "[white]"
	ResultsFacetBar    string // tview color string like "[#5a6f8f]"
	ResultsStatusError string // tview color string like "[red]"

	// Header bar colors
	HeaderKeyText   string // tview color string like "[yellow]"
	HeaderLabelText string // tview color string like "[#767676]"
}

var darkColors = ColorConfig{
	BuilderPaneBorder:       tcell.ColorGray,
	BuilderActivePaneBorder: tcell.ColorYellow,
	BuilderPaneTitleText:    tcell.ColorWhite,
	BuilderPreviewText:      "[white]",
	BuilderOperatorText:     "[yellow]",
	BuilderCombinedText:     "[green]",

	TermChipForeground:         tcell.NewHexColor(0xb8b8b8),
	TermChipBackground:         tcell.NewHexColor(0x2a2a2a),
	TermChipSelectedForeground: tcell.ColorBlack,
	TermChipSelectedBackground: tcell.NewHexColor(0x5a6f8f),

	PromptLabelColor:    tcell.ColorYellow,
	CompletionHintColor: tcell.NewHexColor(0x606060),

	ResultsHeaderText:  "[yellow]",
	ResultsRowText:     "[white]",
	ResultsFacetBar:    "[#5a6f8f]",
	ResultsStatusError: "[red]",

	HeaderKeyText:   "[yellow]",
	HeaderLabelText: "[#767676]",
}

var lightColors = ColorConfig{
	BuilderPaneBorder:       tcell.ColorDarkGray,
	BuilderActivePaneBorder: tcell.ColorBlue,
	BuilderPaneTitleText:    tcell.ColorBlack,
	BuilderPreviewText:      "[black]",
	BuilderOperatorText:     "[blue]",
	BuilderCombinedText:     "[darkgreen]",

	TermChipForeground:         tcell.NewHexColor(0x303030),
	TermChipBackground:         tcell.NewHexColor(0xdddddd),
	TermChipSelectedForeground: tcell.ColorWhite,
	TermChipSelectedBackground: tcell.NewHexColor(0x33527a),

	PromptLabelColor:    tcell.ColorBlue,
	CompletionHintColor: tcell.NewHexColor(0x909090),

	ResultsHeaderText:  "[blue]",
	ResultsRowText:     "[black]",
	ResultsFacetBar:    "[#33527a]",
	ResultsStatusError: "[red]",

	HeaderKeyText:   "[blue]",
	HeaderLabelText: "[#606060]",
}

// GetColors returns the color configuration for the effective theme.
func GetColors() ColorConfig {
	if GetEffectiveTheme() == "light" {
		return lightColors
	}
	return darkColors
}

// GetContentBackgroundColor returns the background color for content areas
// Dark theme needs black background for light text; light theme uses terminal default
func GetContentBackgroundColor() tcell.Color {
	if GetEffectiveTheme() == "dark" {
		return tcell.ColorBlack
	}
	return tcell.ColorDefault
}

// GetContentTextColor returns the appropriate text color for content areas
func GetContentTextColor() tcell.Color {
	if GetEffectiveTheme() == "dark" {
		return tcell.ColorWhite
	}
	return tcell.ColorBlack
}
