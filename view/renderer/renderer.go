// Package renderer turns markdown into styled terminal text.
package renderer

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown source into terminal output with ANSI
// styling. Implementations must be safe for repeated use.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// GlamourRenderer renders markdown through charmbracelet/glamour
type GlamourRenderer struct {
	renderer *glamour.TermRenderer
}

// NewGlamourRenderer creates a glamour-backed renderer with automatic
// light/dark style detection
func NewGlamourRenderer() (*GlamourRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create glamour renderer: %w", err)
	}
	return &GlamourRenderer{renderer: r}, nil
}

// Render renders markdown to styled terminal text
func (g *GlamourRenderer) Render(markdown string) (string, error) {
	out, err := g.renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// FallbackRenderer passes markdown through unstyled. Used when the glamour
// renderer cannot be constructed (odd TERM setups).
type FallbackRenderer struct{}

// Render returns the markdown source unchanged
func (f *FallbackRenderer) Render(markdown string) (string, error) {
	return markdown, nil
}

// NewMarkdownRenderer returns a glamour renderer when possible and the
// plain fallback otherwise
func NewMarkdownRenderer() MarkdownRenderer {
	if r, err := NewGlamourRenderer(); err == nil {
		return r
	}
	return &FallbackRenderer{}
}
