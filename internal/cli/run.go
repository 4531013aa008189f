package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/cowsay/pkg/config"
	"github.com/arthur-debert/cowsay/pkg/cows"
	"github.com/arthur-debert/cowsay/pkg/cowsay"
	"github.com/arthur-debert/cowsay/pkg/errors"
	"github.com/arthur-debert/cowsay/pkg/logging"
	"github.com/arthur-debert/cowsay/pkg/paths"
	"github.com/arthur-debert/cowsay/pkg/ui"
)

func (o *options) run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if o.topic != "" {
		if o.topicsErr != nil {
			return errors.Wrap(o.topicsErr, errors.ErrInternal, MsgErrTopics)
		}
		return o.topics.Show(out, o.topic)
	}

	p := paths.New()
	cfg, err := config.Load(config.Options{
		ConfigFile: p.ConfigFile(),
		Overrides:  o.overrides(cmd),
	})
	if err != nil {
		return err
	}

	if o.printConfig {
		data, err := config.Dump(cfg)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return errors.Wrap(err, errors.ErrInternal, MsgErrWriteFail)
		}
		return nil
	}

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, out)
	if err != nil {
		return err
	}

	resolver := cows.NewResolver(cows.Embedded(), cows.NewDirStore(p.CowDirs()...))
	if err := o.render(cmd, cfg, renderer, resolver, args); err != nil {
		return reportError(format, cmd.ErrOrStderr(), err)
	}
	return nil
}

func (o *options) render(cmd *cobra.Command, cfg *config.Config, renderer ui.Renderer, resolver *cows.Resolver, args []string) error {
	logger := logging.GetLogger("cli")
	if o.list {
		return renderer.RenderFigures(resolver.Names())
	}

	message, err := cowsay.ReadMessage(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	req := o.request(cmd, cfg, message)
	sayer := cowsay.NewSayer(resolver)

	logger.Info().
		Str("figure", req.Figure).
		Bool("random", req.Random).
		Bool("thinking", req.Thinking).
		Int("width", req.Width).
		Bool("all", o.all).
		Msg("Rendering")

	if o.all {
		speeches, err := sayer.SayAll(cmd.Context(), sayer.Everyone(req))
		if err != nil {
			return err
		}
		return renderer.RenderSpeeches(speeches)
	}

	speech, err := sayer.Say(req)
	if err != nil {
		return err
	}
	return renderer.RenderSpeech(speech)
}

// overrides returns config values for the flags given on the command line.
// Unset flags leave the config file and environment in charge.
func (o *options) overrides(cmd *cobra.Command) map[string]interface{} {
	flags := cmd.Flags()
	out := make(map[string]interface{})
	set := func(flag, key string, value interface{}) {
		if flags.Changed(flag) {
			out[key] = value
		}
	}

	set("cow", "figure.name", o.cow)
	set("width", "bubble.width", o.width)
	set("nowrap", "bubble.wrap", !o.noWrap)
	set("eyes", "glyphs.eyes", o.customEyes)
	set("tongue", "glyphs.tongue", o.tongue)
	set("format", "output.format", o.format)

	// The default of --think follows the program name.
	if o.think || flags.Changed("think") {
		out["figure.think"] = o.think
	}
	return out
}

// request builds the rendering request. Eyes from --eyes are literal; eyes
// from configuration may also name a preset.
func (o *options) request(cmd *cobra.Command, cfg *config.Config, message string) cowsay.Request {
	req := cowsay.NewRequest(message)
	req.Figure = cfg.Figure.Name
	req.Random = o.random
	req.Width = cfg.Bubble.Width
	req.Wrap = cfg.Bubble.Wrap
	req.Thinking = cfg.Figure.Think
	req.Tongue = cfg.Glyphs.Tongue

	req.Eyes = o.eyes
	switch eyes := cfg.Glyphs.Eyes; {
	case cmd.Flags().Changed("eyes"):
		req.Eyes.Custom = o.customEyes
	case eyes != "" && !req.Eyes.Set(eyes):
		req.Eyes.Custom = eyes
	}
	return req
}
