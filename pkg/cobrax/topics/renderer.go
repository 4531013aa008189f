package topics

// Renderer turns raw topic content into terminal output
type Renderer interface {
	// Render takes raw content and its file extension
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
