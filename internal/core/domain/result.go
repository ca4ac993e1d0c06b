package domain

// JobStatus is the outcome of a single job.
type JobStatus string

const (
	// StatusBundled indicates the output was written.
	StatusBundled JobStatus = "bundled"
	// StatusCached indicates the output was up to date.
	StatusCached JobStatus = "cached"
	// StatusSkipped indicates the job has no bundling strategy.
	StatusSkipped JobStatus = "skipped"
	// StatusFailed indicates bundling failed.
	StatusFailed JobStatus = "failed"
)

// JobResult reports what happened to one job of a run.
type JobResult struct {
	JobID      string
	OutputPath string
	Status     JobStatus
	Err        error
}
