// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/cowsay/pkg/cowsay"
)

// Renderer prints speeches exactly as rendered
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderSpeech prints the bubble and the figure, each on its own block
func (r *Renderer) RenderSpeech(speech *cowsay.Speech) error {
	_, err := io.WriteString(r.output, speech.String())
	return err
}

// RenderSpeeches prints each speech under a "name:" heading
func (r *Renderer) RenderSpeeches(speeches []*cowsay.Speech) error {
	for i, speech := range speeches {
		if i > 0 {
			if _, err := fmt.Fprintln(r.output); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(r.output, "%s:\n", speech.Figure); err != nil {
			return err
		}
		if err := r.RenderSpeech(speech); err != nil {
			return err
		}
	}
	return nil
}

// RenderFigures prints the figure names on one line
func (r *Renderer) RenderFigures(names []string) error {
	_, err := fmt.Fprintln(r.output, strings.Join(names, " "))
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}
