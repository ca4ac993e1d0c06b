// Package app implements the application layer for wshpack.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/wshpack/internal/engine/bundler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.SourceResolver
	bundler      *bundler.Bundler
	executor     ports.Executor
	watcher      ports.Watcher
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.SourceResolver,
	b *bundler.Bundler,
	executor ports.Executor,
	watcher ports.Watcher,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		bundler:      b,
		executor:     executor,
		watcher:      watcher,
		telemetry:    telemetry,
		logger:       log,
	}
}

// BundleOptions configuration for the Bundle, Run and Watch methods.
type BundleOptions struct {
	// Overrides takes precedence over wshpack.yaml. Relative directories
	// are resolved against the working directory.
	Overrides domain.Config
	// JobID restricts the run to a single job.
	JobID string
	// Force rewrites outputs even when nothing changed.
	Force bool
}

// Bundle writes the outputs of the package found at source.
func (a *App) Bundle(ctx context.Context, source string, opts BundleOptions) ([]domain.JobResult, error) {
	defer a.closeTelemetry()

	run, err := a.prepare(source, opts)
	if err != nil {
		return nil, err
	}
	return a.bundle(ctx, run)
}

// Jobs lists the jobs of the package found at source.
func (a *App) Jobs(source string) (*domain.Package, error) {
	return a.bundler.Jobs(source)
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	BundleOptions
	// Engine replaces the configured script host command.
	Engine []string
	// Stdout and Stderr receive the engine output. Nil sends it to the logger.
	Stdout io.Writer
	Stderr io.Writer
}

// Run bundles a single job and executes its output with the script host.
func (a *App) Run(ctx context.Context, source string, opts RunOptions) error {
	defer a.closeTelemetry()

	run, err := a.prepare(source, opts.BundleOptions)
	if err != nil {
		return err
	}

	if run.opts.JobID == "" {
		id, err := a.defaultJob(run.wsfPath)
		if err != nil {
			return err
		}
		run.opts.JobID = id
	}

	results, err := a.bundle(ctx, run)
	if err != nil {
		return err
	}
	if len(results) != 1 || results[0].OutputPath == "" {
		return zerr.With(zerr.Wrap(domain.ErrJobNotFound, "nothing to run"), "job", run.opts.JobID)
	}
	output := results[0].OutputPath

	engine := opts.Engine
	if len(engine) == 0 {
		engine = run.config.EngineCommand()
	}
	if len(engine) == 0 || engine[0] == "" {
		return zerr.Wrap(domain.ErrEngineRequired, "no script host configured")
	}

	command := append(append([]string(nil), engine...), output)
	a.logger.Info(fmt.Sprintf("running %s with %s", filepath.Base(output), engine[0]))

	if err := a.executor.Execute(ctx, command, filepath.Dir(output), opts.Stdout, opts.Stderr); err != nil {
		return zerr.With(zerr.Wrap(err, "script failed"), "job", run.opts.JobID)
	}
	return nil
}

// defaultJob returns the id of the only job of the package.
func (a *App) defaultJob(wsfPath string) (string, error) {
	pkg, err := a.bundler.Jobs(wsfPath)
	if err != nil {
		return "", err
	}
	if len(pkg.Jobs) != 1 {
		err := zerr.Wrap(domain.ErrEmptyArgument, "package has several jobs, choose one with --job")
		return "", zerr.With(err, "jobs", len(pkg.Jobs))
	}
	return pkg.Jobs[0].ID, nil
}

// Clean removes the build info store of the package found at source.
func (a *App) Clean(_ context.Context, source string) error {
	wsfPath, err := a.resolver.ResolvePackage(source)
	if err != nil {
		return err
	}

	state := filepath.Join(filepath.Dir(wsfPath), domain.StateDirName)
	a.logger.Info(fmt.Sprintf("removing %s...", state))
	if err := os.RemoveAll(state); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove build info store"), "path", state)
	}
	return nil
}

// runState is a resolved invocation.
type runState struct {
	wsfPath string
	root    string
	config  *domain.Config
	opts    domain.PackOptions
}

func (a *App) prepare(source string, opts BundleOptions) (*runState, error) {
	wsfPath, err := a.resolver.ResolvePackage(source)
	if err != nil {
		return nil, err
	}
	root := filepath.Dir(wsfPath)

	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	overrides, err := absDirs(opts.Overrides)
	if err != nil {
		return nil, err
	}
	merged := mergeConfig(cfg, &overrides)

	packOpts, err := merged.PackOptions(root)
	if err != nil {
		return nil, err
	}
	packOpts.JobID = opts.JobID
	packOpts.Force = opts.Force

	return &runState{wsfPath: wsfPath, root: root, config: merged, opts: packOpts}, nil
}

func (a *App) bundle(ctx context.Context, run *runState) ([]domain.JobResult, error) {
	results, err := a.bundler.BundleWshFiles(ctx, run.wsfPath, run.opts)
	if err != nil {
		return results, zerr.Wrap(err, domain.ErrBundleFailed.Error())
	}
	return results, nil
}

func (a *App) closeTelemetry() {
	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn("failed to close telemetry: " + err.Error())
	}
}

// absDirs resolves the directory overrides against the working directory.
func absDirs(cfg domain.Config) (domain.Config, error) {
	for _, dir := range []*string{&cfg.BaseDir, &cfg.DestDir} {
		if *dir == "" {
			continue
		}
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return cfg, zerr.With(zerr.Wrap(err, "failed to resolve directory"), "path", *dir)
		}
		*dir = abs
	}
	return cfg, nil
}

// mergeConfig layers override on top of base. Ignore patterns accumulate.
func mergeConfig(base, override *domain.Config) *domain.Config {
	merged := domain.Config{}
	if base != nil {
		merged = *base
		merged.Ignore = append([]string(nil), base.Ignore...)
	}
	if override == nil {
		return &merged
	}

	if override.BaseDir != "" {
		merged.BaseDir = override.BaseDir
	}
	if override.DestDir != "" {
		merged.DestDir = override.DestDir
	}
	if override.Minify != nil {
		merged.Minify = override.Minify
	}
	if override.SourceEncoding != "" {
		merged.SourceEncoding = override.SourceEncoding
	}
	if override.OutputEncoding != "" {
		merged.OutputEncoding = override.OutputEncoding
	}
	if override.BOM != nil {
		merged.BOM = override.BOM
	}
	if len(override.Engine) > 0 {
		merged.Engine = override.Engine
	}
	merged.Ignore = append(merged.Ignore, override.Ignore...)

	return &merged
}
