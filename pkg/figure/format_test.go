package figure_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/cowsay/pkg/figure"
	"github.com/stretchr/testify/assert"
)

const defaultCow = `##
## The default cow
##
$the_cow = <<"EOC";
        $thoughts   ^__^
         $thoughts  ($eyes)\\_______
            (__)\\       )\\/\\
               $tongue||----w |
                ||     ||
EOC
`

func TestFormat_DefaultCow(t *testing.T) {
	got := figure.Format(defaultCow, figure.DefaultGlyphs())

	want := strings.Join([]string{
		`        \   ^__^`,
		`         \  (oo)\_______`,
		`            (__)\       )\/\`,
		`                ||----w |`,
		`                ||     ||`,
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormat_ThinkingLink(t *testing.T) {
	g := figure.DefaultGlyphs()
	g.Thoughts = figure.Thinking.Link()

	got := figure.Format(defaultCow, g)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "        o   ^__^", lines[0])
	assert.Equal(t, `         o  (oo)\_______`, lines[1])
}

func TestFormat_ReplacesEveryOccurrence(t *testing.T) {
	got := figure.Format("$eyes $eyes $tongue$tongue $thoughts$thoughts", figure.Glyphs{
		Eyes:     "==",
		Tongue:   "U",
		Thoughts: "o",
	})

	assert.Equal(t, "== == UU oo", got)
}

func TestFormat_Escapes(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		g    figure.Glyphs
		want string
	}{
		{
			name: "escaped at sign",
			tmpl: `(\@\@)`,
			want: "(@@)",
		},
		{
			name: "escaped backslash",
			tmpl: `a\\b`,
			want: `a\b`,
		},
		{
			name: "substituted eyes keep their backslashes",
			tmpl: `($eyes)`,
			g:    figure.Glyphs{Eyes: `\\`},
			want: `(\\)`,
		},
		{
			name: "substituted tongue keeps its escape lookalike",
			tmpl: `$tongue`,
			g:    figure.Glyphs{Tongue: `\@`},
			want: `\@`,
		},
		{
			name: "backslash before a placeholder",
			tmpl: `\$eyes`,
			g:    figure.Glyphs{Eyes: "@@"},
			want: `\@@`,
		},
		{
			name: "lone backslash is kept",
			tmpl: `/\ \x`,
			want: `/\ \x`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, figure.Format(tt.tmpl, tt.g))
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		want string
	}{
		{
			name: "drops comments and markers",
			tmpl: "## comment\n$the_cow = <<EOC;\n  art\nEOC\n",
			want: "  art",
		},
		{
			name: "hash inside a line is kept",
			tmpl: "  ## not a comment\n# single hash",
			want: "  ## not a comment\n# single hash",
		},
		{
			name: "trailing whitespace trimmed, leading kept",
			tmpl: "\n   top\n\n  bottom   \n\n\t\n",
			want: "\n   top\n\n  bottom",
		},
		{
			name: "empty template",
			tmpl: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, figure.Strip(tt.tmpl))
		})
	}
}

func TestFormat_StripIsIdempotent(t *testing.T) {
	g := figure.Glyphs{Eyes: "xx", Tongue: "U ", Thoughts: `\`}

	stripped := figure.Strip(defaultCow)
	assert.Equal(t, figure.Format(defaultCow, g), figure.Format(stripped, g))
	assert.Equal(t, stripped, figure.Strip(stripped))
}
