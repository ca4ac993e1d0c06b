package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/wshpack/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex implements ports.Vertex for one bundling job.
// Script reads go to the vertex output stream and warnings to its error stream.
type Vertex struct {
	vertex *progrock.VertexRecorder
	job    string
	out    io.Writer
	errs   io.Writer

	mu       sync.Mutex
	sources  int
	warnings int
}

func newVertex(rec *progrock.VertexRecorder, job string) *Vertex {
	return &Vertex{
		vertex: rec,
		job:    job,
		out:    rec.Stdout(),
		errs:   rec.Stderr(),
	}
}

// Source records a script file read into the job.
func (v *Vertex) Source(path string) {
	v.mu.Lock()
	v.sources++
	v.mu.Unlock()

	_, _ = fmt.Fprintf(v.out, "read %s\n", path)
}

// Warn records a minifier warning, prefixed with the job id.
func (v *Vertex) Warn(msg string) {
	v.mu.Lock()
	v.warnings++
	v.mu.Unlock()

	_, _ = fmt.Fprintf(v.errs, "%s: %s\n", v.job, msg)
}

// Wrote records the output path with the sources read and warnings raised so far.
func (v *Vertex) Wrote(path string) {
	v.mu.Lock()
	sources, warnings := v.sources, v.warnings
	v.mu.Unlock()

	line := fmt.Sprintf("wrote %s (%d %s", path, sources, plural(sources, "source"))
	if warnings > 0 {
		line += fmt.Sprintf(", %d %s", warnings, plural(warnings, "warning"))
	}
	_, _ = io.WriteString(v.out, line+")\n")
}

// Complete marks the job as finished, successfully or with an error.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the job output as up to date.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
