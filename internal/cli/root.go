package cli

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/cowsay/internal/version"
	"github.com/arthur-debert/cowsay/pkg/bubble"
	"github.com/arthur-debert/cowsay/pkg/cobrax/topics"
	"github.com/arthur-debert/cowsay/pkg/cowsay"
	"github.com/arthur-debert/cowsay/pkg/errors"
	"github.com/arthur-debert/cowsay/pkg/figure"
	"github.com/arthur-debert/cowsay/pkg/logging"
)

//go:embed help/*.md
var helpFS embed.FS

// options holds the parsed command line.
type options struct {
	verbosity   int
	cow         string
	width       int
	noWrap      bool
	eyes        figure.EyeFlags
	customEyes  string
	tongue      string
	list        bool
	random      bool
	think       bool
	all         bool
	format      string
	printConfig bool
	topic       string

	topics    *topics.TopicManager
	topicsErr error
}

// IsThinkName reports whether a program invoked as name should think by
// default, e.g. a cowthink symlink.
func IsThinkName(name string) bool {
	return strings.HasSuffix(filepath.Base(name), "cowthink")
}

// NewRootCmd creates the root command. name is the program name as invoked;
// a name ending in "cowthink" selects thinking mode.
func NewRootCmd(name string) *cobra.Command {
	initTemplateFormatting()

	use := filepath.Base(name)
	if use == "" || use == "." {
		use = "cowsay"
	}
	thinking := IsThinkName(use)
	short := MsgRootShort
	if thinking {
		short = MsgThinkShort
	}

	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     use + " [flags] [message...]",
		Short:   short,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	// Options end at the first message word, as with the classic getopts CLI.
	flags.SetInterspersed(false)

	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&opts.cow, "cow", "f", cowsay.DefaultFigure, MsgFlagCow)
	flags.IntVarP(&opts.width, "width", "W", bubble.DefaultWidth, MsgFlagWidth)
	flags.BoolVarP(&opts.noWrap, "nowrap", "n", false, MsgFlagNoWrap)
	flags.StringVarP(&opts.customEyes, "eyes", "e", figure.DefaultEyes, MsgFlagEyes)
	flags.StringVarP(&opts.tongue, "tongue", "T", figure.DefaultTongue, MsgFlagTongue)

	presetFlags := map[string]*bool{
		"borg":     &opts.eyes.Borg,
		"dead":     &opts.eyes.Dead,
		"greedy":   &opts.eyes.Greedy,
		"paranoid": &opts.eyes.Paranoid,
		"stoned":   &opts.eyes.Stoned,
		"tired":    &opts.eyes.Tired,
		"wired":    &opts.eyes.Wired,
		"youthful": &opts.eyes.Youthful,
	}
	for _, p := range figure.Presets() {
		flags.BoolVarP(presetFlags[p.Name], p.Name, p.Name[:1], false, fmt.Sprintf(MsgFlagPreset, p.Name, p.Eyes))
	}

	flags.BoolVarP(&opts.list, "list", "l", false, MsgFlagList)
	flags.BoolVar(&opts.random, "random", false, MsgFlagRandom)
	flags.BoolVar(&opts.think, "think", thinking, MsgFlagThink)
	flags.BoolVar(&opts.all, "all", false, MsgFlagAll)
	flags.StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	flags.BoolVar(&opts.printConfig, "print-config", false, MsgFlagPrintConfig)
	flags.StringVar(&opts.topic, "topic", "", MsgFlagTopic)

	rootCmd.SetFlagErrorFunc(flagError)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)
	rootCmd.SetVersionTemplate(versionTemplate())

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if stdoutIsTerminal() {
		renderer = topics.NewGlamourRenderer()
	}
	opts.topics, opts.topicsErr = topics.Install(rootCmd, helpFS, topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	})

	return rootCmd
}

// flagError maps pflag parse failures to coded errors. Only a value that
// does not parse for --width is an INVALID_WIDTH error.
func flagError(cmd *cobra.Command, err error) error {
	if isWidthValueError(cmd, err) {
		return errors.Wrap(err, errors.ErrInvalidWidth, MsgErrWidth)
	}
	return errors.Wrap(err, errors.ErrInvalidInput, MsgErrFlags)
}

// isWidthValueError matches pflag's `invalid argument "x" for "-W, --width"
// flag` error.
func isWidthValueError(cmd *cobra.Command, err error) bool {
	flag := cmd.Flags().Lookup("width")
	if flag == nil {
		return false
	}
	name := "--" + flag.Name
	if flag.Shorthand != "" {
		name = fmt.Sprintf("-%s, --%s", flag.Shorthand, flag.Name)
	}
	msg := err.Error()
	return strings.HasPrefix(msg, "invalid argument ") &&
		strings.Contains(msg, fmt.Sprintf(" for %q flag", name))
}

func versionTemplate() string {
	tmpl := MsgVersionTemplate
	if version.Commit != "" && version.Commit != "unknown" {
		tmpl += fmt.Sprintf(MsgVersionCommit, version.Commit)
	}
	if version.Date != "" && version.Date != "unknown" {
		tmpl += fmt.Sprintf(MsgVersionBuilt, version.Date)
	}
	return tmpl
}
