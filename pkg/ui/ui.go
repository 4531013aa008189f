// Package ui prints rendered speeches in terminal (colored), text (plain),
// or JSON form.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/cowsay/pkg/cowsay"
	"github.com/arthur-debert/cowsay/pkg/errors"
	"github.com/arthur-debert/cowsay/pkg/ui/json"
	"github.com/arthur-debert/cowsay/pkg/ui/terminal"
	"github.com/arthur-debert/cowsay/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderSpeech prints a bubble followed by its figure
	RenderSpeech(speech *cowsay.Speech) error

	// RenderSpeeches prints several speeches, e.g. one per figure
	RenderSpeeches(speeches []*cowsay.Speech) error

	// RenderFigures prints the list of known figure names
	RenderFigures(names []string) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output:
// files are probed for terminal capabilities, anything else gets text.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
