package minify

import (
	"regexp"
	"strings"
)

var (
	// vbsComments drops ' comments that are not preceded by a string literal on their line.
	vbsComments = regexp.MustCompile(`(^|\r?\n)([^'"]*)(\s*'[^\n]*)`)
	// vbsBlankLines collapses empty lines.
	vbsBlankLines = regexp.MustCompile(`\s*\r?\n\s*\r?\n`)
	// vbsContinuations joins lines split with " _".
	vbsContinuations = regexp.MustCompile(`\s+_\r?\n\s*`)
	// vbsLineBreaks matches any line break left by the passes above.
	vbsLineBreaks = regexp.MustCompile(`\r\n|\n|\r`)
)

// VBScript minifies VBScript code with three textual passes.
// A comment following a string literal on the same line is kept.
// The result uses CRLF line breaks and has no leading or trailing empty lines.
func VBScript(code string) string {
	code = vbsComments.ReplaceAllString(code, "${1}${2}")
	code = vbsBlankLines.ReplaceAllLiteralString(code, "\r\n")
	code = vbsContinuations.ReplaceAllLiteralString(code, " ")
	code = vbsLineBreaks.ReplaceAllLiteralString(code, "\r\n")
	return strings.Trim(code, "\r\n")
}
