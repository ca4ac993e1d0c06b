package ports

import "go.trai.ch/wshpack/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file in dir.
	// A missing file yields an empty configuration.
	Load(dir string) (*domain.Config, error)
}
