package bundler

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	// optionExplicit matches a whole line holding only the statement and an optional comment.
	optionExplicit = regexp.MustCompile(`(?i)^[ \t]*option[ \t]+explicit[ \t]*(?:'.*)?$`)
	lineBreak      = regexp.MustCompile(`\r\n|\n|\r`)
)

// source is a script reference that survived the ignore patterns.
type source struct {
	ref domain.ScriptRef
	// path is the absolute file path. Empty for inline scripts.
	path string
}

// ResolveWsfPath returns the descriptor path for a directory or file.
func (b *Bundler) ResolveWsfPath(source string) (string, error) {
	return b.resolver.ResolvePackage(source)
}

// BundleJScriptSrcs concatenates JScript files, each followed by a line break.
func (b *Bundler) BundleJScriptSrcs(ctx context.Context, paths []string, opts domain.BundleOptions) (string, error) {
	sources, err := b.resolvePaths(domain.JScript, paths, opts)
	if err != nil {
		return "", err
	}
	return b.renderFlat(ctx, sources, opts)
}

// BundleVBScriptSrcs concatenates VBScript files, each followed by a line break.
// Every Option Explicit statement is replaced by a single one on the first line.
func (b *Bundler) BundleVBScriptSrcs(ctx context.Context, paths []string, opts domain.BundleOptions) (string, error) {
	sources, err := b.resolvePaths(domain.VBScript, paths, opts)
	if err != nil {
		return "", err
	}
	code, err := b.renderFlat(ctx, sources, opts)
	if err != nil {
		return "", err
	}
	return hoistOptionExplicit(code), nil
}

// BundleWsfJob wraps every script in its own <script> element inside a
// single-job package. Markup is copied verbatim after the <job> tag.
func (b *Bundler) BundleWsfJob(ctx context.Context, refs []domain.ScriptRef, opts domain.BundleOptions, markup ...string) (string, error) {
	if len(refs) == 0 {
		return "", zerr.Wrap(domain.ErrEmptyArgument, "no scripts to bundle")
	}
	sources, err := b.resolveSources(refs, opts)
	if err != nil {
		return "", err
	}
	return b.renderWsf(ctx, sources, opts, markup)
}

func (b *Bundler) resolvePaths(lang domain.Language, paths []string, opts domain.BundleOptions) ([]source, error) {
	if len(paths) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrEmptyArgument, "no scripts to bundle"), "language", lang.String())
	}
	refs := make([]domain.ScriptRef, len(paths))
	for i, p := range paths {
		if p == "" {
			return nil, zerr.Wrap(domain.ErrEmptyArgument, "empty script path")
		}
		refs[i] = domain.ScriptRef{Language: lang, Src: p}
	}
	return b.resolveSources(refs, opts)
}

// resolveSources drops ignored references and resolves the rest.
// Ignored files need not exist.
func (b *Bundler) resolveSources(refs []domain.ScriptRef, opts domain.BundleOptions) ([]source, error) {
	if len(refs) == 0 {
		return nil, zerr.Wrap(domain.ErrEmptyArgument, "no scripts to bundle")
	}

	sources := make([]source, 0, len(refs))
	for _, ref := range refs {
		if ref.IsInline() {
			sources = append(sources, source{ref: ref})
			continue
		}

		if opts.Ignored(candidatePath(opts.BaseDir, ref.Src)) {
			continue
		}

		path, err := b.resolver.ResolveScript(opts.BaseDir, ref.Src)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source{ref: ref, path: path})
	}
	return sources, nil
}

func candidatePath(baseDir, src string) string {
	path := src
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, src)
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func sourcePaths(sources []source) []string {
	paths := make([]string, 0, len(sources))
	for _, s := range sources {
		if s.path != "" {
			paths = append(paths, s.path)
		}
	}
	return paths
}

// fragment returns the code of one source, minified when requested.
func (b *Bundler) fragment(ctx context.Context, s source, opts domain.BundleOptions) (string, error) {
	code := s.ref.Inline
	if s.path != "" {
		text, err := b.reader.ReadText(s.path, opts.SourceEncoding)
		if err != nil {
			return "", err
		}
		code = text
		if v, ok := ports.VertexFromContext(ctx); ok {
			v.Source(s.path)
		}
	}

	if !opts.Minify {
		return code, nil
	}

	minified, warnings, err := b.minifier.Minify(s.ref.Language, code)
	if err != nil {
		if s.path != "" {
			return "", zerr.With(zerr.Wrap(err, "cannot minify source"), "path", s.path)
		}
		return "", err
	}
	for _, w := range warnings {
		b.warn(ctx, w)
	}
	return minified, nil
}

func (b *Bundler) warn(ctx context.Context, msg string) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Warn(msg)
		return
	}
	b.logger.Warn(msg)
}

func (b *Bundler) renderFlat(ctx context.Context, sources []source, opts domain.BundleOptions) (string, error) {
	var sb strings.Builder
	for _, s := range sources {
		code, err := b.fragment(ctx, s, opts)
		if err != nil {
			return "", err
		}
		sb.WriteString(code)
		sb.WriteString(domain.EOL)
	}
	return sb.String(), nil
}

func (b *Bundler) renderWsf(ctx context.Context, sources []source, opts domain.BundleOptions, markup []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("<package>" + domain.EOL)
	sb.WriteString(`<job id="` + domain.BundleJobID + `">` + domain.EOL)

	for _, m := range markup {
		sb.WriteString(m)
		sb.WriteString(domain.EOL)
	}

	for _, s := range sources {
		lang := s.ref.Language
		if lang != domain.JScript && lang != domain.VBScript {
			return "", zerr.With(zerr.Wrap(domain.ErrUnsupportedLanguage, "cannot bundle script"), "language", lang.String())
		}

		code, err := b.fragment(ctx, s, opts)
		if err != nil {
			return "", err
		}
		sb.WriteString(`<script language="` + lang.String() + `">` + domain.EOL)
		sb.WriteString(code)
		sb.WriteString(domain.EOL + "</script>" + domain.EOL)
	}

	sb.WriteString("</job>" + domain.EOL)
	sb.WriteString("</package>" + domain.EOL)
	return sb.String(), nil
}

// hoistOptionExplicit removes every Option Explicit statement and, when
// one was present, puts a single one on the first line. Blank lines left
// above the first statement are dropped.
func hoistOptionExplicit(code string) string {
	lines := lineBreak.Split(code, -1)

	kept := make([]string, 0, len(lines))
	found := false
	for _, line := range lines {
		if optionExplicit.MatchString(line) {
			found = true
			continue
		}
		if len(kept) == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	if !found {
		return code
	}
	if len(kept) == 0 {
		return "Option Explicit" + domain.EOL
	}

	return "Option Explicit" + domain.EOL + strings.Join(kept, domain.EOL)
}
