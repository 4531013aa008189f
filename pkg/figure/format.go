package figure

import (
	"strings"
	"unicode"
)

const (
	commentMarker = "##"
	endMarker     = "EOC"

	eyesPlaceholder     = "$eyes"
	thoughtsPlaceholder = "$thoughts"
	tonguePlaceholder   = "$tongue"
)

// Glyphs are the short strings substituted into a template.
type Glyphs struct {
	Eyes     string
	Tongue   string
	Thoughts string
}

// DefaultGlyphs returns the glyphs of a plain speaking figure.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Eyes:     DefaultEyes,
		Tongue:   DefaultTongue,
		Thoughts: Speaking.Link(),
	}
}

// Format strips template markers from tmpl and substitutes g into it.
//
// Placeholders and escapes are resolved in a single left-to-right pass over
// the template text, so a substituted glyph is never read as an escape.
func Format(tmpl string, g Glyphs) string {
	body := Strip(tmpl)

	r := strings.NewReplacer(
		eyesPlaceholder, g.Eyes,
		thoughtsPlaceholder, g.Thoughts,
		tonguePlaceholder, g.Tongue,
		`\\`, `\`,
		`\@`, `@`,
	)
	return r.Replace(body)
}

// Strip drops comment and end-marker lines from tmpl and trims trailing
// whitespace from the result. Leading and inner whitespace is kept.
func Strip(tmpl string) string {
	lines := strings.Split(tmpl, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, commentMarker) || strings.Contains(line, endMarker) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimRightFunc(strings.Join(kept, "\n"), unicode.IsSpace)
}
