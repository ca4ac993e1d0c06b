package domain

import (
	"regexp"

	"go.trai.ch/zerr"
)

// BundleOptions controls how the sources of a job are read and minified.
type BundleOptions struct {
	// BaseDir is the directory script paths are resolved against.
	BaseDir string
	// Minify selects minified output. When false sources are passed through.
	Minify bool
	// Ignore excludes every resolved absolute path matching one of the patterns.
	Ignore []*regexp.Regexp
	// SourceEncoding forces the decoding of sources. Empty means auto-detect.
	SourceEncoding string
}

// WriteOptions controls how a bundle is encoded on disk.
type WriteOptions struct {
	// Encoding is a WHATWG encoding label such as "utf-8" or "shift_jis".
	Encoding string
	// BOM prefixes a byte order mark for Unicode encodings.
	BOM bool
	// EOL replaces every line break.
	EOL string
	// TrimEnd strips trailing blanks from each line.
	TrimEnd bool
}

// PackOptions controls a full run over a package.
type PackOptions struct {
	Bundle BundleOptions
	Write  WriteOptions
	// JobID restricts the run to a single job.
	JobID string
	// DestDir is where outputs are written. Empty means the descriptor directory.
	DestDir string
	// Force rewrites outputs even when nothing changed.
	Force bool
}

// DefaultBundleOptions returns minifying options rooted at the working directory.
func DefaultBundleOptions() BundleOptions {
	return BundleOptions{
		BaseDir: ".",
		Minify:  true,
	}
}

// DefaultWriteOptions returns UTF-8 with BOM, CRLF and trimmed line ends.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Encoding: "utf-8",
		BOM:      true,
		EOL:      EOL,
		TrimEnd:  true,
	}
}

// DefaultPackOptions returns the options of a plain bundle run.
func DefaultPackOptions() PackOptions {
	return PackOptions{
		Bundle: DefaultBundleOptions(),
		Write:  DefaultWriteOptions(),
	}
}

// CompileIgnore compiles case-insensitive ignore patterns.
func CompileIgnore(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(ErrInvalidIgnorePattern, err.Error()), "pattern", p)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

// Ignored reports whether path matches any pattern.
func (o BundleOptions) Ignored(path string) bool {
	for _, re := range o.Ignore {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
