package minify

import (
	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Minifier = (*Minifier)(nil)

// Minifier implements ports.Minifier by dispatching on the script language.
type Minifier struct{}

// New creates a new Minifier.
func New() *Minifier {
	return &Minifier{}
}

// Minify minifies code written in lang.
func (m *Minifier) Minify(lang domain.Language, code string) (string, []string, error) {
	switch lang {
	case domain.JScript:
		return JScript(code)
	case domain.VBScript:
		return VBScript(code), nil, nil
	default:
		return "", nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedLanguage, "cannot minify"), "language", lang.String())
	}
}
