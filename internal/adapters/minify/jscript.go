// Package minify shrinks JScript and VBScript sources.
package minify

import (
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// jscriptOptions target the ES3 engine of Windows Script Host.
// Identifiers are kept because scripts share globals across <script> elements.
// Syntax rewriting stays off: it turns o["default"] into o.default and
// {"class": 1} into {class: 1}, which JScript rejects for reserved words.
var jscriptOptions = api.TransformOptions{
	Loader:            api.LoaderJS,
	Target:            api.ES5,
	Charset:           api.CharsetASCII,
	LegalComments:     api.LegalCommentsNone,
	MangleQuoted:      api.MangleQuotedFalse,
	MinifyWhitespace:  true,
	MinifySyntax:      false,
	MinifyIdentifiers: false,
}

// JScript minifies JScript code. Warnings are returned formatted, one per entry.
func JScript(code string) (string, []string, error) {
	result := api.Transform(code, jscriptOptions)

	warnings := api.FormatMessages(result.Warnings, api.FormatMessagesOptions{Kind: api.WarningMessage})
	if len(result.Errors) > 0 {
		msgs := api.FormatMessages(result.Errors, api.FormatMessagesOptions{Kind: api.ErrorMessage})
		err := zerr.Wrap(domain.ErrMinifyFailed, strings.TrimSpace(strings.Join(msgs, "\n")))
		return "", warnings, zerr.With(err, "language", domain.JScript.String())
	}

	return strings.TrimRight(string(result.Code), "\n"), warnings, nil
}
