package tutorial

import (
	"github.com/charmbracelet/glamour"
)

// Renderer turns lesson markdown into terminal output.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer builds a glamour renderer. style is auto, dark, light or notty;
// wordWrap <= 0 disables wrapping.
func NewRenderer(style string, wordWrap int) (*Renderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wordWrap)}
	switch style {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{term: term}, nil
}

// Render renders md. A nil Renderer returns md unchanged.
func (r *Renderer) Render(md string) (string, error) {
	if r == nil || r.term == nil {
		return md, nil
	}
	return r.term.Render(md)
}
