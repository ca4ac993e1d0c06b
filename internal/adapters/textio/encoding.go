// Package textio reads and writes script text in legacy and Unicode encodings.
package textio

import (
	"strings"
	"unicode/utf8"

	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// Lookup returns the encoding for a WHATWG label such as "utf-8" or "shift_jis".
func Lookup(label string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(strings.TrimSpace(label))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownEncoding, err.Error()), "encoding", label)
	}
	return enc, nil
}

// isUnicode reports whether a byte order mark is meaningful for enc.
func isUnicode(enc encoding.Encoding) bool {
	name, err := htmlindex.Name(enc)
	if err != nil {
		return false
	}
	switch name {
	case "utf-8", "utf-16le", "utf-16be":
		return true
	default:
		return false
	}
}

// detect picks the decoding of data used when no BOM is present.
// A forced label wins, then valid UTF-8, then sniffing.
func detect(data []byte, label string) (encoding.Encoding, error) {
	if label != "" {
		return Lookup(label)
	}
	if utf8.Valid(data) {
		return unicode.UTF8, nil
	}
	enc, _, _ := charset.DetermineEncoding(data, "text/plain")
	return enc, nil
}
