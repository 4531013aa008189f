// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/cowsay/pkg/cowsay"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// RenderSpeech encodes one speech as an object
func (r *Renderer) RenderSpeech(speech *cowsay.Speech) error {
	return r.encoder.Encode(speech)
}

// RenderSpeeches encodes the speeches as an array
func (r *Renderer) RenderSpeeches(speeches []*cowsay.Speech) error {
	return r.encoder.Encode(speeches)
}

// RenderFigures encodes the names under a "figures" key
func (r *Renderer) RenderFigures(names []string) error {
	return r.encoder.Encode(map[string][]string{"figures": names})
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}
