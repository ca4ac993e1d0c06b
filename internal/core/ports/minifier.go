package ports

import "go.trai.ch/wshpack/internal/core/domain"

// Minifier shrinks script sources.
//
//go:generate mockgen -source=minifier.go -destination=mocks/mock_minifier.go -package=mocks
type Minifier interface {
	// Minify returns the minified code together with any non-fatal warnings.
	Minify(lang domain.Language, code string) (string, []string, error)
}
