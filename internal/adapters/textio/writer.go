package textio

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BundleWriter = (*Writer)(nil)

var (
	// trailingSpace matches blanks and empty lines before a line break.
	trailingSpace = regexp.MustCompile(`\s+(\r\n|\n|\r)`)
	lineBreak     = regexp.MustCompile(`\r\n|\n|\r`)
)

// Writer implements ports.BundleWriter.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteText formats, encodes and writes text to path.
func (w *Writer) WriteText(path, text string, opts domain.WriteOptions) error {
	data, err := Encode(text, opts)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrWriteFailed, err), "path", path)
	}

	//nolint:gosec // Output path is chosen by the package author
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrWriteFailed, err), "path", path)
	}

	return nil
}

// Format applies the whitespace and line ending options to text.
func Format(text string, opts domain.WriteOptions) string {
	if opts.TrimEnd {
		text = trailingSpace.ReplaceAllString(text, "$1")
	}
	if opts.EOL != "" {
		text = lineBreak.ReplaceAllLiteralString(text, opts.EOL)
	}
	return text
}

// Encode formats text and converts it to bytes in the configured encoding.
func Encode(text string, opts domain.WriteOptions) ([]byte, error) {
	label := opts.Encoding
	if label == "" {
		label = "utf-8"
	}
	enc, err := Lookup(label)
	if err != nil {
		return nil, err
	}

	text = Format(strings.TrimPrefix(text, "\uFEFF"), opts)
	if opts.BOM && isUnicode(enc) {
		text = "\uFEFF" + text
	}

	data, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrWriteFailed, err), "encoding", label)
	}

	return data, nil
}
