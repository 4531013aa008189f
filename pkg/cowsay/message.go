package cowsay

import (
	"io"
	"strings"
	"unicode"

	"github.com/arthur-debert/cowsay/pkg/errors"
)

// ReadMessage joins args with single spaces. With no args, or only empty
// ones, it reads all of stdin and trims trailing whitespace. Newlines in the
// result are kept; the bubble treats them as ordinary characters.
func ReadMessage(args []string, stdin io.Reader) (string, error) {
	message := strings.Join(args, " ")
	if message != "" {
		return message, nil
	}
	if stdin == nil {
		return "", nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to read message from stdin")
	}
	return strings.TrimRightFunc(string(data), unicode.IsSpace), nil
}
