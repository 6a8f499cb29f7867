package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	Style string // "auto", "notty", a standard style name, or a path to a custom style
	Width int    // Word wrap width, 0 leaves glamour's default
}

// NewGlamourRenderer creates a markdown renderer with style auto-detection.
// NO_COLOR selects the plain "notty" style.
func NewGlamourRenderer() *GlamourRenderer {
	style := "auto"
	if os.Getenv("NO_COLOR") != "" {
		style = "notty"
	}
	return &GlamourRenderer{Style: style}
}

// Render converts markdown to terminal output. Anything else, or any
// rendering failure, yields the content unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "notty", "dark", "light", "ascii", "dracula", "pink", "tokyo-night":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
