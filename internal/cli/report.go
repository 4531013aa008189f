package cli

import (
	stderrors "errors"
	"io"

	"github.com/arthur-debert/cowsay/pkg/ui"
)

// ReportedError is an error already written to the user in the selected
// output format. Callers only need to set the exit status.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// IsReported reports whether err was already written by the command.
func IsReported(err error) bool {
	var reported *ReportedError
	return stderrors.As(err, &reported)
}

// reportError writes err to w with a renderer for format, so JSON callers
// get JSON errors. If that fails err is returned unmarked.
func reportError(format ui.Format, w io.Writer, err error) error {
	renderer, rerr := ui.NewRenderer(format, w)
	if rerr != nil {
		return err
	}
	if rerr := renderer.RenderError(err); rerr != nil {
		return err
	}
	return &ReportedError{Err: err}
}
