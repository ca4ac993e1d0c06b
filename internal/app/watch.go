package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.trai.ch/wshpack/internal/adapters/watcher"
	"go.trai.ch/wshpack/internal/core/domain"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	BundleOptions
	// Debounce is the quiet period before a rebundle. Zero uses the watcher default.
	Debounce time.Duration
}

// Watch bundles the package once and again after every burst of changes
// below the package and base directories, until ctx is canceled.
func (a *App) Watch(ctx context.Context, source string, opts WatchOptions) error {
	defer a.closeTelemetry()

	run, err := a.prepare(source, opts.BundleOptions)
	if err != nil {
		return err
	}

	session := &watchSession{app: a, source: source, opts: opts.BundleOptions}
	session.rebundle(ctx, nil)

	window := opts.Debounce
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		session.rebundle(ctx, paths)
	})
	defer debouncer.Stop()

	roots := watchRoots(run.root, run.opts.Bundle.BaseDir)
	if err := a.watcher.Start(ctx, roots...); err != nil {
		return err
	}
	defer func() {
		if err := a.watcher.Stop(); err != nil {
			a.logger.Warn("failed to stop watcher: " + err.Error())
		}
	}()

	a.logger.Info(fmt.Sprintf("watching %s", strings.Join(roots, ", ")))

	for event := range a.watcher.Events() {
		if ctx.Err() != nil {
			break
		}
		if session.isOutput(event.Path) {
			continue
		}
		debouncer.Add(event.Path)
	}

	debouncer.Stop()
	// Wait for a rebundle that is still running.
	session.mu.Lock()
	defer session.mu.Unlock()

	return nil
}

// watchSession serializes rebundles and remembers the files they wrote.
type watchSession struct {
	app    *App
	source string
	opts   BundleOptions

	mu      sync.Mutex
	outputs map[string]bool
}

func (s *watchSession) rebundle(ctx context.Context, changed []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	if len(changed) > 0 {
		s.app.logger.Info(fmt.Sprintf("%d file(s) changed, rebundling", len(changed)))
	}

	// The descriptor and config are read again so edits to them apply.
	run, err := s.app.prepare(s.source, s.opts)
	if err != nil {
		s.app.logger.Error(err)
		return
	}

	results, err := s.app.bundle(ctx, run)
	outputs := make(map[string]bool, len(results))
	var bundled int
	for _, r := range results {
		if r.OutputPath != "" {
			outputs[r.OutputPath] = true
		}
		if r.Status == domain.StatusBundled {
			bundled++
		}
	}
	s.outputs = outputs

	if err != nil {
		s.app.logger.Error(err)
		return
	}
	s.app.logger.Info(fmt.Sprintf("%d of %d job(s) rebundled", bundled, len(results)))
}

// isOutput reports whether path is a file written by the last rebundle.
func (s *watchSession) isOutput(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outputs[filepath.Clean(path)]
}

// watchRoots returns root and baseDir, dropping baseDir when root contains it.
func watchRoots(root, baseDir string) []string {
	roots := []string{root}
	if baseDir == "" {
		return roots
	}
	rel, err := filepath.Rel(root, baseDir)
	if err == nil && (rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))) {
		return roots
	}
	return append(roots, baseDir)
}
