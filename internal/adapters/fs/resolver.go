package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceResolver = (*Resolver)(nil)

// Resolver implements ports.SourceResolver against the local file system.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolvePackage maps a directory to its Package.wsf and a file to itself.
func (r *Resolver) ResolvePackage(source string) (string, error) {
	if source == "" {
		return "", zerr.Wrap(domain.ErrSourceRequired, "cannot resolve package")
	}

	abs, err := filepath.Abs(source)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", source)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "invalid source"), "path", abs)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to stat path"), "path", abs)
	}

	if info.IsDir() {
		return filepath.Join(abs, domain.PackageFileName), nil
	}

	return abs, nil
}

// ResolveScript returns the absolute path of src relative to baseDir.
func (r *Resolver) ResolveScript(baseDir, src string) (string, error) {
	path := src
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, src)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", src)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", zerr.With(zerr.Wrap(domain.ErrScriptNotFound, "cannot resolve script"), "path", abs)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to stat path"), "path", abs)
	}
	if info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrScriptNotFound, "script path is a directory"), "path", abs)
	}

	return abs, nil
}
