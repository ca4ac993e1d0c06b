// Package config provides the configuration loader for wshpack.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader returns a loader reading domain.ConfigFileName.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.ConfigFileName}
}

// Load reads the configuration from the given directory.
func (l *FileConfigLoader) Load(dir string) (*domain.Config, error) {
	return Load(filepath.Join(dir, l.Filename))
}

// Load reads a configuration file from the given path.
// A missing file yields an empty configuration.
func Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, fs.ErrNotExist) {
		return &domain.Config{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	return manifest.toDomain(), nil
}

func (m *Manifest) toDomain() *domain.Config {
	return &domain.Config{
		BaseDir:        strings.TrimSpace(m.BaseDir),
		DestDir:        strings.TrimSpace(m.DestDir),
		Minify:         m.Minify,
		Ignore:         m.Ignore,
		SourceEncoding: strings.TrimSpace(m.Encoding.Source),
		OutputEncoding: strings.TrimSpace(m.Encoding.Output),
		BOM:            m.Encoding.BOM,
		Engine:         nonEmpty(m.Engine),
	}
}

func nonEmpty(strs []string) []string {
	var res []string
	for _, s := range strs {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}
