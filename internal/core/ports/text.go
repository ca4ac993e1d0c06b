package ports

import "go.trai.ch/wshpack/internal/core/domain"

// SourceReader reads script sources as text.
//
//go:generate mockgen -source=text.go -destination=mocks/mock_text.go -package=mocks
type SourceReader interface {
	// ReadText decodes the file at path. An empty encoding means auto-detect.
	ReadText(path, encoding string) (string, error)
}

// BundleWriter writes bundles to disk.
type BundleWriter interface {
	// WriteText encodes text according to opts and writes it to path,
	// creating missing parent directories.
	WriteText(path, text string, opts domain.WriteOptions) error
}
