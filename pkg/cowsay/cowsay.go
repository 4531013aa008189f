package cowsay

import (
	"math/rand/v2"

	"github.com/arthur-debert/cowsay/pkg/bubble"
	"github.com/arthur-debert/cowsay/pkg/cows"
	"github.com/arthur-debert/cowsay/pkg/figure"
	"github.com/arthur-debert/cowsay/pkg/logging"
)

// DefaultFigure is the figure used when none is named.
const DefaultFigure = "default"

// Request describes a single rendering.
type Request struct {
	Message string
	// Figure is a store name or a path to a .cow file.
	Figure string
	// Random replaces Figure with a uniformly chosen store name.
	Random   bool
	Width    int
	Wrap     bool
	Thinking bool
	Eyes     figure.EyeFlags
	// Tongue is used as given; an empty string draws no tongue.
	Tongue string
}

// NewRequest returns a Request with the classic defaults: default figure,
// 40 columns, wrapping, speaking, a blank tongue.
func NewRequest(message string) Request {
	return Request{
		Message: message,
		Figure:  DefaultFigure,
		Width:   bubble.DefaultWidth,
		Wrap:    true,
		Tongue:  figure.DefaultTongue,
	}
}

// Glyphs resolves the glyphs for r. The same Thinking flag that picks the
// bubble style picks the link glyph.
func (r Request) Glyphs() figure.Glyphs {
	return figure.Glyphs{
		Eyes:     figure.ResolveEyes(r.Eyes),
		Tongue:   r.Tongue,
		Thoughts: figure.VoiceFor(r.Thinking).Link(),
	}
}

// BubbleOptions returns the layout options for r.
func (r Request) BubbleOptions() bubble.Options {
	return bubble.Options{Width: r.Width, Wrap: r.Wrap, Thinking: r.Thinking}
}

// Speech is the rendered result of a Request.
type Speech struct {
	Figure string `json:"figure"`
	Bubble string `json:"bubble"`
	Body   string `json:"body"`
}

// String returns the bubble and then the figure, each followed by a newline.
func (s *Speech) String() string {
	return s.Bubble + "\n" + s.Body + "\n"
}

// Sayer renders requests against a template resolver.
type Sayer struct {
	resolver *cows.Resolver
	rng      *rand.Rand
}

// NewSayer returns a Sayer backed by resolver.
func NewSayer(resolver *cows.Resolver) *Sayer {
	return &Sayer{
		resolver: resolver,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// WithRand makes random figure selection use rng.
func (s *Sayer) WithRand(rng *rand.Rand) *Sayer {
	s.rng = rng
	return s
}

// Resolver returns the template resolver.
func (s *Sayer) Resolver() *cows.Resolver {
	return s.resolver
}

// Say renders req.
func (s *Sayer) Say(req Request) (*Speech, error) {
	name, err := s.figureName(req)
	if err != nil {
		return nil, err
	}
	return s.say(req, name)
}

func (s *Sayer) figureName(req Request) (string, error) {
	if req.Random {
		return s.resolver.Random(s.rng)
	}
	if req.Figure == "" {
		return DefaultFigure, nil
	}
	return req.Figure, nil
}

func (s *Sayer) say(req Request, name string) (*Speech, error) {
	logger := logging.GetLogger("cowsay")
	done := logging.LogOperationStart(logger, "say")
	defer done()

	tmpl, err := s.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}

	glyphs := req.Glyphs()
	logger.Debug().
		Str("figure", name).
		Str("eyes", glyphs.Eyes).
		Bool("thinking", req.Thinking).
		Int("width", req.Width).
		Msg("Rendering")

	return &Speech{
		Figure: name,
		Bubble: bubble.Render(req.Message, req.BubbleOptions()),
		Body:   figure.Format(string(tmpl), glyphs),
	}, nil
}
