// export_test.go exports private constructors for white-box testing.
package progrock

import "io"

// NewStreamVertex creates a Vertex for job that writes to out and errs without a recorder.
func NewStreamVertex(job string, out, errs io.Writer) *Vertex {
	return &Vertex{job: job, out: out, errs: errs}
}
