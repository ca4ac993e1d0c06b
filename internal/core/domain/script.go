// Package domain holds the core types of the WSH bundler.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Language identifies a script engine understood by Windows Script Host.
type Language uint8

const (
	// LanguageUnknown is the zero value and never valid in a job.
	LanguageUnknown Language = iota
	// JScript is Microsoft's ECMAScript 3 dialect.
	JScript
	// VBScript is Visual Basic Scripting Edition.
	VBScript
)

// String returns the canonical name used in the language attribute.
func (l Language) String() string {
	switch l {
	case JScript:
		return "JScript"
	case VBScript:
		return "VBScript"
	default:
		return "unknown"
	}
}

// Ext returns the file extension of a flat bundle in this language.
func (l Language) Ext() string {
	switch l {
	case JScript:
		return ".js"
	case VBScript:
		return ".vbs"
	default:
		return ""
	}
}

// ParseLanguage maps a language attribute to a Language.
// An empty attribute defaults to JScript, which is what the script host does.
func ParseLanguage(attr string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(attr)) {
	case "", "jscript", "javascript", "jscript.encode":
		return JScript, nil
	case "vbscript", "vbs", "vbscript.encode":
		return VBScript, nil
	default:
		return LanguageUnknown, zerr.With(zerr.Wrap(ErrUnsupportedLanguage, "cannot parse language"), "language", attr)
	}
}

// ScriptRef is a single <script> element of a job.
type ScriptRef struct {
	Language Language
	// Src is the path as written in the src attribute. Empty for inline scripts.
	Src string
	// Inline is the body of a script element without src.
	Inline string
}

// IsInline reports whether the script carries its code in the descriptor.
func (r ScriptRef) IsInline() bool {
	return r.Src == ""
}
