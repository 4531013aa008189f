package topics

import (
	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/cowsay/pkg/logging"
)

// GlamourRenderer uses the glamour library for rich markdown rendering
type GlamourRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Terminal width (0 = auto-detect)
}

// NewGlamourRenderer creates a markdown renderer that detects style and width
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{
		Style: "auto",
	}
}

// Render formats markdown for the terminal. Other formats, and any glamour
// failure, yield the content unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Style != "" && r.Style != "auto" {
		options[0] = glamour.WithStylePath(r.Style)
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	logger := logging.GetLogger("cobrax.topics")
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		logger.Debug().Err(err).Msg("glamour unavailable, showing raw topic")
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		logger.Debug().Err(err).Msg("topic render failed, showing raw topic")
		return content
	}
	return rendered
}
