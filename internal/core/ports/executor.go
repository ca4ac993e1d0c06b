package ports

import (
	"context"
	"io"
)

// Executor runs external commands.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs command in dir, streaming its output to stdout and stderr.
	// It returns an error if the command exits with a non-zero status.
	Execute(ctx context.Context, command []string, dir string, stdout, stderr io.Writer) error
}
