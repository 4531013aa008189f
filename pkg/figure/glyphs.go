package figure

const (
	// DefaultEyes is used when no preset or custom eyes are requested.
	DefaultEyes = "oo"
	// DefaultTongue is a single space, i.e. no visible tongue.
	DefaultTongue = " "
)

// Preset is a named eye glyph.
type Preset struct {
	Name string
	Eyes string
}

// presets are in priority order: the first enabled one wins.
var presets = []Preset{
	{Name: "borg", Eyes: "=="},
	{Name: "dead", Eyes: "xx"},
	{Name: "greedy", Eyes: "$$"},
	{Name: "paranoid", Eyes: "@@"},
	{Name: "stoned", Eyes: "**"},
	{Name: "tired", Eyes: "--"},
	{Name: "wired", Eyes: "OO"},
	{Name: "youthful", Eyes: ".."},
}

// Presets returns the named eye presets in priority order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetEyes returns the eyes of the preset called name.
func PresetEyes(name string) (string, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p.Eyes, true
		}
	}
	return "", false
}

// EyeFlags records which eye presets were requested. Custom holds explicit
// eyes; it counts as requested whenever it is non-empty.
type EyeFlags struct {
	Borg     bool
	Dead     bool
	Greedy   bool
	Paranoid bool
	Stoned   bool
	Tired    bool
	Wired    bool
	Youthful bool
	Custom   string
}

// Set enables the preset called name. It reports false for unknown names.
func (f *EyeFlags) Set(name string) bool {
	switch name {
	case "borg":
		f.Borg = true
	case "dead":
		f.Dead = true
	case "greedy":
		f.Greedy = true
	case "paranoid":
		f.Paranoid = true
	case "stoned":
		f.Stoned = true
	case "tired":
		f.Tired = true
	case "wired":
		f.Wired = true
	case "youthful":
		f.Youthful = true
	default:
		return false
	}
	return true
}

// ResolveEyes picks exactly one eye glyph. Presets are checked in order
// borg, dead, greedy, paranoid, stoned, tired, wired, youthful, then custom
// eyes, then DefaultEyes.
func ResolveEyes(f EyeFlags) string {
	enabled := []bool{f.Borg, f.Dead, f.Greedy, f.Paranoid, f.Stoned, f.Tired, f.Wired, f.Youthful}
	for i, p := range presets {
		if enabled[i] {
			return p.Eyes
		}
	}
	if f.Custom != "" {
		return f.Custom
	}
	return DefaultEyes
}

// Voice is the global saying/thinking mode.
type Voice int

const (
	// Speaking draws a speech bubble linked by backslashes.
	Speaking Voice = iota
	// Thinking draws a thought bubble linked by small circles.
	Thinking
)

// VoiceFor maps the thinking flag to a Voice.
func VoiceFor(thinking bool) Voice {
	if thinking {
		return Thinking
	}
	return Speaking
}

// Thinking reports whether v draws a thought bubble.
func (v Voice) Thinking() bool {
	return v == Thinking
}

// Link returns the glyph drawn between the bubble and the figure.
func (v Voice) Link() string {
	if v == Thinking {
		return "o"
	}
	return `\`
}

// String returns "think" or "say".
func (v Voice) String() string {
	if v == Thinking {
		return "think"
	}
	return "say"
}
