package bubble

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultWidth is the wrap width used when none is configured.
	DefaultWidth = 40

	topFill    = "_"
	bottomFill = "-"
	pad        = " "
)

// Options controls how a message is laid out.
type Options struct {
	// Width is the maximum number of runes per wrapped line. Values below 1
	// are treated as 1.
	Width int
	// Wrap enables word wrapping. When false the message is a single line.
	Wrap bool
	// Thinking selects the Thought style instead of Speech.
	Thinking bool
}

// DefaultOptions returns a 40 column, wrapping speech bubble.
func DefaultOptions() Options {
	return Options{Width: DefaultWidth, Wrap: true}
}

// Render draws message inside a bubble and returns the lines joined by
// newlines, without a trailing newline.
func Render(message string, opts Options) string {
	var lines []string
	if opts.Wrap {
		lines = Wrap(message, opts.Width)
	} else {
		lines = []string{message}
	}

	decorated := Decorate(lines, StyleFor(opts.Thinking))
	longest := Pad(decorated)

	out := make([]string, 0, len(decorated)+2)
	out = append(out, rule(topFill, longest))
	out = append(out, decorated...)
	out = append(out, rule(bottomFill, longest))

	log.Trace().
		Int("lines", len(lines)).
		Int("longest", longest).
		Bool("thinking", opts.Thinking).
		Msg("Rendered bubble")

	return strings.Join(out, "\n")
}

// Wrap cuts message into lines of at most width runes using greedy word
// wrapping. Each cut is placed just after the last space inside the window,
// so produced lines keep their trailing space. When a window holds no space
// the line is hard-broken at width.
func Wrap(message string, width int) []string {
	if width < 1 {
		width = 1
	}

	runes := []rune(message)
	var lines []string
	cursor := 0
	for len(runes)-cursor > width {
		cut := width
		for end := cursor + width; end > cursor; end-- {
			if runes[end-1] == ' ' {
				cut = end - cursor
				break
			}
		}
		lines = append(lines, string(runes[cursor:cursor+cut]))
		cursor += cut
	}
	return append(lines, string(runes[cursor:]))
}

// Decorate frames every line with the border glyphs of style, separated from
// the text by one space on each side.
func Decorate(lines []string, style Style) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		left, right := style.frame(i, len(lines))
		out[i] = left + " " + line + " " + right
	}
	return out
}

// Pad right-pads lines in place so they all share the longest length. The
// padding goes just before the closing glyph. It returns that length.
func Pad(lines []string) int {
	longest := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}

	for i, line := range lines {
		missing := longest - utf8.RuneCountInString(line)
		if missing <= 0 {
			continue
		}
		_, size := utf8.DecodeLastRuneInString(line)
		split := len(line) - size
		lines[i] = line[:split] + strings.Repeat(pad, missing) + line[split:]
	}
	return longest
}

// rule builds a horizontal rule of the given length: one space on each side
// of length-2 fill characters.
func rule(fill string, length int) string {
	if length < 2 {
		return strings.Repeat(" ", length)
	}
	return " " + strings.Repeat(fill, length-2) + " "
}
