// Package topics provides topic-based help for Cobra CLI applications.
// Topics are text or markdown files read from any fs.FS, usually an
// embedded directory, and are reachable through the root command's help.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/cowsay/pkg/errors"
)

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	fsys       fs.FS
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic represents a help topic
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics
	// Defaults to [".txt", ".md"] if not specified
	Extensions []string

	// Renderer for formatting topic content (optional)
	// Defaults to PlainRenderer if not specified
	Renderer Renderer
}

// New creates a TopicManager reading topics from fsys
func New(fsys fs.FS, opts Options) *TopicManager {
	tm := &TopicManager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}
	return tm
}

// Load walks the file system and registers every supported file
func (tm *TopicManager) Load() error {
	err := fs.WalkDir(tm.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !slices.Contains(tm.extensions, ext) {
			return nil
		}

		content, err := fs.ReadFile(tm.fsys, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to scan topics")
	}
	return nil
}

// GetTopic retrieves a topic by name
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	// Flag-style lookups (--eyes) resolve to option-eyes
	name = strings.TrimLeft(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics["option-"+name]
	return topic, ok
}

// ListTopics returns all topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Show writes the rendered topic to w. The name "topics" lists them all.
func (tm *TopicManager) Show(w io.Writer, name string) error {
	if name == "topics" {
		return tm.writeIndex(w)
	}

	topic, ok := tm.GetTopic(name)
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "no help topic named %q", name).
			WithDetail("topic", name)
	}
	_, err := io.WriteString(w, tm.renderer.Render(topic.Content, path.Ext(topic.Path)))
	return err
}

func (tm *TopicManager) writeIndex(w io.Writer) error {
	names := tm.ListTopics()
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "No help topics available.")
		return err
	}

	var general, options []string
	for _, name := range names {
		if opt, ok := strings.CutPrefix(name, "option-"); ok {
			options = append(options, opt)
		} else {
			general = append(general, name)
		}
	}

	var b strings.Builder
	b.WriteString("Available help topics:\n")
	if len(general) > 0 {
		b.WriteString("\nGeneral topics:\n")
		for _, name := range general {
			fmt.Fprintf(&b, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		b.WriteString("\nOption topics:\n")
		for _, name := range options {
			fmt.Fprintf(&b, "  --%s\n", name)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Install loads the topics and makes the root help function show a topic
// when its first argument names one, so "cmd --help eyes" works without
// a help subcommand swallowing positional words.
func Install(rootCmd *cobra.Command, fsys fs.FS, opts Options) (*TopicManager, error) {
	tm := New(fsys, opts)
	if err := tm.Load(); err != nil {
		return nil, err
	}

	originalHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if name := firstWord(args); name != "" {
			if _, ok := tm.GetTopic(name); ok || name == "topics" {
				_ = tm.Show(cmd.OutOrStdout(), name)
				return
			}
		}
		originalHelp(cmd, args)
	})
	return tm, nil
}

// firstWord returns the first argument that is not a flag. Cobra hands the
// help function the raw command line, "--help" included.
func firstWord(args []string) string {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			return arg
		}
	}
	return ""
}
