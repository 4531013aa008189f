package config

import (
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/cowsay/pkg/errors"
	"github.com/arthur-debert/cowsay/pkg/logging"
)

// EnvPrefix prefixes environment overrides, e.g. COWSAY_BUBBLE_WIDTH.
const EnvPrefix = "COWSAY_"

const widthKey = "bubble.width"

// Options selects the sources Load reads.
type Options struct {
	// ConfigFile is the user config file. Empty skips it.
	ConfigFile string
	// Overrides are applied last, keyed by dotted path ("bubble.width").
	Overrides map[string]interface{}
}

// Load builds the effective configuration. Later layers win:
//
//  1. embedded defaults
//  2. user config file (TOML or YAML by extension)
//  3. COWSAY_* environment variables
//  4. explicit overrides, usually command-line flags
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if opts.ConfigFile != "" {
		parser := parserFor(opts.ConfigFile)
		if err := k.Load(file.Provider(opts.ConfigFile), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		logger.Debug().Str("path", opts.ConfigFile).Msg("Loaded user config")
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		if isWidthError(err) {
			return nil, errors.Wrap(err, errors.ErrInvalidWidth, "bubble width must be a whole number")
		}
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	logger.Debug().
		Int("width", cfg.Bubble.Width).
		Bool("wrap", cfg.Bubble.Wrap).
		Str("figure", cfg.Figure.Name).
		Msg("Configuration loaded")
	return &cfg, nil
}

// Dump renders cfg as TOML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// isWidthError reports whether mapstructure failed on the bubble.width key.
func isWidthError(err error) bool {
	return strings.Contains(err.Error(), "'"+widthKey+"'")
}
