package textio

import (
	"fmt"
	"os"

	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var _ ports.SourceReader = (*Reader)(nil)

// Reader implements ports.SourceReader.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadText reads and decodes the file at path.
// A byte order mark always selects the matching Unicode decoding and is stripped.
func (r *Reader) ReadText(path, encoding string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is resolved by the caller
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrReadFailed, err), "path", path)
	}

	return Decode(data, encoding)
}

// Decode converts data to a string. An empty label means auto-detect.
func Decode(data []byte, label string) (string, error) {
	fallback, err := detect(data, label)
	if err != nil {
		return "", err
	}

	out, _, err := transform.Bytes(unicode.BOMOverride(fallback.NewDecoder()), data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrReadFailed, err)
	}

	return string(out), nil
}
