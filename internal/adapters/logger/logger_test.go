package logger_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wshpack/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	return logger.NewWithWriter(&buf), &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("some message")

	assert.Equal(t, "some message\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Warn("some warning")

	assert.Equal(t, "! some warning\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(os.ErrPermission)

	assert.Equal(t, "✗ Error: permission denied\n", buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	sentinel := zerr.New("script source not found")
	err := zerr.With(zerr.Wrap(sentinel, "cannot bundle job"), "job", "main.wsf")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: cannot bundle job")
	assert.Contains(t, out, "job: main.wsf")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ script source not found")
}

func TestLogger_SetOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	lg := logger.NewWithWriter(nil)

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	lg.Info("redirected")

	assert.Equal(t, "redirected\n", buf.String())
}

func TestNew(t *testing.T) {
	require.NotNil(t, logger.New())
}

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
		{
			name:         "metadata on standard error",
			err:          zerr.With(errors.New("plain"), "path", "a.js"),
			wantMessages: []string{"plain"},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			require.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message)
			}
		})
	}
}

func TestCollectErrorEntries_MetadataMovesToNextLink(t *testing.T) {
	entries := logger.CollectErrorEntries(zerr.With(errors.New("plain"), "path", "a.js"))

	require.Len(t, entries, 1)
	assert.Equal(t, map[string]any{"path": "a.js"}, entries[0].Metadata)
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "two entries",
			entries: []logger.ErrorEntry{{Message: "outer"}, {Message: "inner"}},
			want:    "Error: outer\n\n  Caused by:\n    → inner",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{
				{Message: "error", Metadata: map[string]any{"zebra": "z", "alpha": "a"}},
			},
			want: "Error: error\n       alpha: a\n       zebra: z",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"path": "x.vbs"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      path: x.vbs",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "line1\nline2"}},
			want:    "Error: line1\n       line2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
