// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"errors"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/wshpack/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder that keeps a tape and prints a job summary to stderr on Close.
func New() ports.Telemetry {
	return NewRecorder(teeWriter{progrock.NewTape(), NewSummary(os.Stderr)})
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	vertex := newVertex(r.rec.Vertex(digest.FromString(name), name), name)
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}

// teeWriter fans status updates out to several writers.
type teeWriter []progrock.Writer

func (t teeWriter) WriteStatus(update *progrock.StatusUpdate) error {
	var errs []error
	for _, w := range t {
		if err := w.WriteStatus(update); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t teeWriter) Close() error {
	var errs []error
	for _, w := range t {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
