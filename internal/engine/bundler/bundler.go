// Package bundler turns the jobs of a .wsf package into distributable files.
package bundler

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Bundler bundles the jobs of a package.
type Bundler struct {
	parser    ports.DescriptorParser
	reader    ports.SourceReader
	writer    ports.BundleWriter
	minifier  ports.Minifier
	resolver  ports.SourceResolver
	hasher    ports.Hasher
	store     ports.BuildInfoStore
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Bundler.
func New(
	parser ports.DescriptorParser,
	reader ports.SourceReader,
	writer ports.BundleWriter,
	minifier ports.Minifier,
	resolver ports.SourceResolver,
	hasher ports.Hasher,
	store ports.BuildInfoStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Bundler {
	return &Bundler{
		parser:    parser,
		reader:    reader,
		writer:    writer,
		minifier:  minifier,
		resolver:  resolver,
		hasher:    hasher,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Jobs resolves and parses the descriptor for source.
func (b *Bundler) Jobs(source string) (*domain.Package, error) {
	wsfPath, err := b.ResolveWsfPath(source)
	if err != nil {
		return nil, err
	}
	return b.parser.Parse(wsfPath)
}

// BundleWshFiles writes one output per job of the package found at source.
// Jobs run concurrently; the first failure cancels the rest and is returned
// along with the results gathered so far.
func (b *Bundler) BundleWshFiles(ctx context.Context, source string, opts domain.PackOptions) ([]domain.JobResult, error) {
	pkg, err := b.Jobs(source)
	if err != nil {
		return nil, err
	}

	if opts.Bundle.BaseDir == "" {
		opts.Bundle.BaseDir = pkg.Dir()
	}
	if opts.DestDir == "" {
		opts.DestDir = pkg.Dir()
	}

	jobs := pkg.Jobs
	if opts.JobID != "" {
		job, ok := pkg.Job(opts.JobID)
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrJobNotFound, "unknown job"), "job", opts.JobID)
		}
		jobs = []domain.Job{*job}
	}

	results := make([]domain.JobResult, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range jobs {
		job := &jobs[i]
		g.Go(func() error {
			res, err := b.bundleJob(ctx, pkg, job, opts)
			if err != nil {
				err = zerr.With(zerr.Wrap(err, "bundle failed"), "job", job.ID)
				res.Status = domain.StatusFailed
				res.Err = err
			}
			results[i] = res
			return err
		})
	}

	err = g.Wait()
	return results, err
}

func (b *Bundler) bundleJob(ctx context.Context, pkg *domain.Package, job *domain.Job, opts domain.PackOptions) (domain.JobResult, error) {
	outPath := filepath.Join(opts.DestDir, job.ID)
	res := domain.JobResult{JobID: job.ID, OutputPath: outPath}

	kind := job.Kind()
	if kind == domain.OutputUnsupported {
		if opts.JobID != "" {
			return res, zerr.With(zerr.Wrap(domain.ErrUnsupportedJobType, "cannot bundle job"), "job", job.ID)
		}
		b.logger.Warn(fmt.Sprintf("skipping job %q: output type is not .wsf, .js or .vbs", job.ID))
		res.Status = domain.StatusSkipped
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}

	ctx, vertex := b.telemetry.Record(ctx, job.ID)
	status, err := b.runJob(ctx, pkg, job, kind, outPath, opts)
	if status == domain.StatusCached {
		vertex.Cached()
	}
	vertex.Complete(err)

	res.Status = status
	return res, err
}

func (b *Bundler) runJob(
	ctx context.Context,
	pkg *domain.Package,
	job *domain.Job,
	kind domain.OutputKind,
	outPath string,
	opts domain.PackOptions,
) (domain.JobStatus, error) {
	if err := checkFlatJob(job, kind); err != nil {
		return domain.StatusFailed, err
	}

	sources, err := b.resolveSources(job.Scripts, opts.Bundle)
	if err != nil {
		return domain.StatusFailed, err
	}

	inputHash, err := b.hasher.ComputeInputHash(job, opts, sourcePaths(sources))
	if err != nil {
		return domain.StatusFailed, err
	}

	if !opts.Force && b.checkCacheHit(pkg.Dir(), outPath, inputHash) {
		return domain.StatusCached, nil
	}

	var code string
	switch kind {
	case domain.OutputWsf:
		code, err = b.renderWsf(ctx, sources, opts.Bundle, job.Markup)
	case domain.OutputJScript:
		code, err = b.renderFlat(ctx, sources, opts.Bundle)
	case domain.OutputVBScript:
		code, err = b.renderFlat(ctx, sources, opts.Bundle)
		code = hoistOptionExplicit(code)
	}
	if err != nil {
		return domain.StatusFailed, err
	}

	if err := b.writer.WriteText(outPath, code, opts.Write); err != nil {
		return domain.StatusFailed, err
	}

	if err := b.updateCache(pkg.Dir(), outPath, inputHash); err != nil {
		return domain.StatusFailed, err
	}

	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Wrote(outPath)
	}
	return domain.StatusBundled, nil
}

// checkFlatJob rejects .js and .vbs jobs that cannot be flattened.
func checkFlatJob(job *domain.Job, kind domain.OutputKind) error {
	want := kind.Language()
	if want == domain.LanguageUnknown {
		return nil
	}
	for _, ref := range job.Scripts {
		if ref.IsInline() {
			return zerr.With(zerr.Wrap(domain.ErrInlineNotAllowed, "flat bundles need src scripts"), "job", job.ID)
		}
		if ref.Language != want {
			err := zerr.Wrap(domain.ErrLanguageMismatch, "flat bundles hold a single language")
			err = zerr.With(err, "src", ref.Src)
			return zerr.With(err, "language", ref.Language.String())
		}
	}
	return nil
}
