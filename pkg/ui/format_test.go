package ui_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/cowsay/pkg/errors"
	"github.com/arthur-debert/cowsay/pkg/ui"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format ui.Format
		want   string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.Format(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    ui.Format
		wantErr bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"terminal", ui.FormatTerminal, false},
		{"TEXT", ui.FormatText, false},
		{"plain", ui.FormatText, false},
		{" json ", ui.FormatJSON, false},
		{"xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestDetectFormat_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
}
