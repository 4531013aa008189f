package bubble

// Style holds the eight border glyphs of a bubble.
// SingleLeft and SingleRight frame a bubble that has exactly one line.
type Style struct {
	SingleLeft  string
	SingleRight string
	TopLeft     string
	TopRight    string
	MidLeft     string
	MidRight    string
	BottomLeft  string
	BottomRight string
}

var (
	// Speech is the angle, pipe and slash border used when saying.
	Speech = Style{
		SingleLeft:  "<",
		SingleRight: ">",
		TopLeft:     "/",
		TopRight:    "\\",
		MidLeft:     "|",
		MidRight:    "|",
		BottomLeft:  "\\",
		BottomRight: "/",
	}

	// Thought uses parentheses in every position.
	Thought = Style{
		SingleLeft:  "(",
		SingleRight: ")",
		TopLeft:     "(",
		TopRight:    ")",
		MidLeft:     "(",
		MidRight:    ")",
		BottomLeft:  "(",
		BottomRight: ")",
	}
)

// StyleFor returns Thought when thinking, Speech otherwise.
func StyleFor(thinking bool) Style {
	if thinking {
		return Thought
	}
	return Speech
}

// frame returns the left and right glyphs for line index i of n.
func (s Style) frame(i, n int) (string, string) {
	switch {
	case n == 1:
		return s.SingleLeft, s.SingleRight
	case i == 0:
		return s.TopLeft, s.TopRight
	case i == n-1:
		return s.BottomLeft, s.BottomRight
	default:
		return s.MidLeft, s.MidRight
	}
}
