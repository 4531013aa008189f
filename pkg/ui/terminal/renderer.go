// Package terminal provides colored terminal output
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/cowsay/pkg/cowsay"
	"github.com/arthur-debert/cowsay/pkg/ui/styles"
)

// Renderer colors the bubble and figure with the registered styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderSpeech prints the styled bubble and figure
func (r *Renderer) RenderSpeech(speech *cowsay.Speech) error {
	var b strings.Builder
	b.WriteString(styleLines(styles.GetStyle("Bubble"), speech.Bubble))
	b.WriteString("\n")
	b.WriteString(styleLines(styles.GetStyle("Figure"), speech.Body))
	b.WriteString("\n")
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderSpeeches prints each speech under a styled heading
func (r *Renderer) RenderSpeeches(speeches []*cowsay.Speech) error {
	header := styles.GetStyle("Header")
	for i, speech := range speeches {
		if i > 0 {
			if _, err := fmt.Fprintln(r.output); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(r.output, header.Render(speech.Figure)); err != nil {
			return err
		}
		if err := r.RenderSpeech(speech); err != nil {
			return err
		}
	}
	return nil
}

// RenderFigures prints the figure names, one per line
func (r *Renderer) RenderFigures(names []string) error {
	header := styles.GetStyle("Header")
	name := styles.GetStyle("Name")
	muted := styles.GetStyle("Muted")

	if _, err := fmt.Fprintln(r.output, header.Render("Available figures:")); err != nil {
		return err
	}
	for _, n := range names {
		if _, err := fmt.Fprintf(r.output, "  %s\n", name.Render(n)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(r.output, muted.Render(fmt.Sprintf("%d figures", len(names))))
	return err
}

// RenderError renders an error with the Error style
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	return werr
}

// styleLines applies style to every line on its own so lipgloss never pads
// the block to a common width.
func styleLines(style lipgloss.Style, block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
