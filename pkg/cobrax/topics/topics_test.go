package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cowsay/pkg/errors"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/cowfiles.md":     {Data: []byte("# Cowfiles\n\nTemplates live in COWPATH")},
		"help/option-eyes.txt": {Data: []byte("Eye presets")},
		"help/notes.txxt":      {Data: []byte("Custom extension")},
		"help/ignore.json":     {Data: []byte("{}")},
	}
}

func TestTopicManager_Load(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS(), Options{})
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"cowfiles", "option-eyes"}, tm.ListTopics())

		topic, ok := tm.GetTopic("cowfiles")
		require.True(t, ok)
		assert.Equal(t, "help/cowfiles.md", topic.Path)
		assert.Contains(t, topic.Content, "COWPATH")

		_, ok = tm.GetTopic("notes")
		assert.False(t, ok)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := New(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Load())

		assert.Equal(t, []string{"notes"}, tm.ListTopics())
	})
}

func TestTopicManager_GetTopic_FlagStyle(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.Load())

	for _, name := range []string{"eyes", "--eyes", "-eyes", "option-eyes"} {
		topic, ok := tm.GetTopic(name)
		require.True(t, ok, name)
		assert.Equal(t, "option-eyes", topic.Name)
	}
}

func TestTopicManager_Show(t *testing.T) {
	tm := New(testFS(), Options{})
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	require.NoError(t, tm.Show(&buf, "eyes"))
	assert.Equal(t, "Eye presets", buf.String())

	buf.Reset()
	require.NoError(t, tm.Show(&buf, "topics"))
	out := buf.String()
	assert.Contains(t, out, "General topics:\n  cowfiles\n")
	assert.Contains(t, out, "Option topics:\n  --eyes\n")

	err := tm.Show(&buf, "missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, "missing", errors.GetErrorDetails(err)["topic"])
}

func TestTopicManager_ShowEmpty(t *testing.T) {
	tm := New(fstest.MapFS{}, Options{})
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	require.NoError(t, tm.Show(&buf, "topics"))
	assert.Equal(t, "No help topics available.\n", buf.String())
}

type upperRenderer struct{ formats []string }

func (r *upperRenderer) Render(content, format string) string {
	r.formats = append(r.formats, format)
	return strings.ToUpper(content)
}

func TestTopicManager_CustomRenderer(t *testing.T) {
	r := &upperRenderer{}
	tm := New(testFS(), Options{Renderer: r})
	require.NoError(t, tm.Load())

	var buf bytes.Buffer
	require.NoError(t, tm.Show(&buf, "cowfiles"))
	assert.True(t, strings.HasPrefix(buf.String(), "# COWFILES"))
	assert.Equal(t, []string{".md"}, r.formats)
}

func TestInstall_HelpFunc(t *testing.T) {
	root := &cobra.Command{Use: "cowsay", Run: func(*cobra.Command, []string) {}}
	var buf bytes.Buffer
	root.SetOut(&buf)

	_, err := Install(root, testFS(), Options{})
	require.NoError(t, err)

	root.HelpFunc()(root, []string{"eyes"})
	assert.Equal(t, "Eye presets", buf.String())

	buf.Reset()
	root.HelpFunc()(root, []string{"--help", "eyes"})
	assert.Equal(t, "Eye presets", buf.String())

	buf.Reset()
	root.HelpFunc()(root, nil)
	assert.Contains(t, buf.String(), "cowsay")
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRenderer_NonMarkdownPassesThrough(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
}

func TestGlamourRenderer_Markdown(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 60}
	out := r.Render("# Cowfiles\n\nTemplates live in COWPATH.", ".md")
	assert.Contains(t, out, "Cowfiles")
	assert.Contains(t, out, "COWPATH")
}
