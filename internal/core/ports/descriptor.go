// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/wshpack/internal/core/domain"

// DescriptorParser reads a .wsf descriptor into its package and jobs.
//
//go:generate mockgen -source=descriptor.go -destination=mocks/mock_descriptor.go -package=mocks
type DescriptorParser interface {
	// Parse reads the descriptor at path.
	// It fails when the file declares no job.
	Parse(path string) (*domain.Package, error)
}
