package config

// Config is the effective cowsay configuration.
type Config struct {
	Bubble Bubble `koanf:"bubble" toml:"bubble"`
	Figure Figure `koanf:"figure" toml:"figure"`
	Glyphs Glyphs `koanf:"glyphs" toml:"glyphs"`
	Output Output `koanf:"output" toml:"output"`
}

// Bubble configures the bubble layout.
type Bubble struct {
	Width int  `koanf:"width" toml:"width"`
	Wrap  bool `koanf:"wrap" toml:"wrap"`
}

// Figure selects the figure and voice.
type Figure struct {
	Name  string `koanf:"name" toml:"name"`
	Think bool   `koanf:"think" toml:"think"`
}

// Glyphs configures eye and tongue glyphs. Eyes may name a preset.
type Glyphs struct {
	Eyes   string `koanf:"eyes" toml:"eyes"`
	Tongue string `koanf:"tongue" toml:"tongue"`
}

// Output configures how results are printed.
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Default returns the configuration used when nothing is overridden. It
// mirrors embedded/defaults.toml.
func Default() *Config {
	return &Config{
		Bubble: Bubble{Width: 40, Wrap: true},
		Figure: Figure{Name: "default"},
		Glyphs: Glyphs{Tongue: " "},
		Output: Output{Format: "auto"},
	}
}
