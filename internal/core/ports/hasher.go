package ports

import "go.trai.ch/wshpack/internal/core/domain"

// Hasher defines the interface for computing hashes.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeInputHash hashes everything that influences the output of a job:
	// the job definition, the options and the content of every source.
	ComputeInputHash(job *domain.Job, opts domain.PackOptions, sources []string) (string, error)

	// ComputeFileHash computes the hash of a file's content.
	ComputeFileHash(path string) (uint64, error)
}
