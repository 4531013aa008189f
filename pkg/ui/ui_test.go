package ui_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cowsay/pkg/cowsay"
	"github.com/arthur-debert/cowsay/pkg/ui"
)

func sampleSpeech() *cowsay.Speech {
	return &cowsay.Speech{
		Figure: "default",
		Bubble: " _____ \n< moo >\n ----- ",
		Body:   "        \\   ^__^",
	}
}

func TestNewRenderer(t *testing.T) {
	var buf bytes.Buffer
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		r, err := ui.NewRenderer(f, &buf)
		require.NoError(t, err, f.String())
		assert.NotNil(t, r)
	}

	_, err := ui.NewRenderer(ui.Format(42), &buf)
	assert.Error(t, err)
}

func TestTextRenderer_Speech(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderSpeech(sampleSpeech()))
	assert.Equal(t, " _____ \n< moo >\n ----- \n        \\   ^__^\n", buf.String())
}

func TestAutoRenderer_BufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)

	speech := sampleSpeech()
	require.NoError(t, r.RenderSpeech(speech))
	assert.Equal(t, speech.String(), buf.String())
}

func TestTextRenderer_Speeches(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	other := sampleSpeech()
	other.Figure = "tux"
	require.NoError(t, r.RenderSpeeches([]*cowsay.Speech{sampleSpeech(), other}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "default:\n"))
	assert.Contains(t, out, "\n\ntux:\n")
}

func TestTextRenderer_FiguresAndError(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderFigures([]string{"default", "tux"}))
	require.NoError(t, r.RenderError(fmt.Errorf("boom")))
	assert.Equal(t, "default tux\nError: boom\n", buf.String())
}

func TestTerminalRenderer_KeepsContent(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderSpeech(sampleSpeech()))
	out := buf.String()
	assert.Contains(t, out, "< moo >")
	assert.Contains(t, out, "^__^")
	assert.Equal(t, 4, strings.Count(out, "\n"))

	buf.Reset()
	require.NoError(t, r.RenderFigures([]string{"default", "tux"}))
	assert.Contains(t, buf.String(), "tux")
	assert.Contains(t, buf.String(), "2 figures")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderSpeech(sampleSpeech()))

	var got map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "default", got["figure"])
	assert.Equal(t, " _____ \n< moo >\n ----- ", got["bubble"])

	buf.Reset()
	require.NoError(t, r.RenderFigures([]string{"a", "b"}))
	var figures map[string][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &figures))
	assert.Equal(t, []string{"a", "b"}, figures["figures"])

	buf.Reset()
	require.NoError(t, r.RenderError(fmt.Errorf("nope")))
	assert.Contains(t, buf.String(), `"error": "nope"`)
}
