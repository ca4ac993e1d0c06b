package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wshpack/internal/adapters/config"
	"go.trai.ch/wshpack/internal/core/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Success(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `
version: "1"
baseDir: src
destDir: " dist "
minify: false
ignore:
  - '\.test\.js$'
encoding:
  source: shift_jis
  output: utf-16le
  bom: false
engine: ["cscript", "//nologo", ""]
`)

	cfg, err := config.NewLoader().Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "src", cfg.BaseDir)
	assert.Equal(t, "dist", cfg.DestDir)
	require.NotNil(t, cfg.Minify)
	assert.False(t, *cfg.Minify)
	assert.Equal(t, []string{`\.test\.js$`}, cfg.Ignore)
	assert.Equal(t, "shift_jis", cfg.SourceEncoding)
	assert.Equal(t, "utf-16le", cfg.OutputEncoding)
	require.NotNil(t, cfg.BOM)
	assert.False(t, *cfg.BOM)
	assert.Equal(t, []string{"cscript", "//nologo"}, cfg.Engine)
}

func TestLoad_UnsetSwitchesStayNil(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "version: \"1\"\n")

	cfg, err := config.NewLoader().Load(tmpDir)
	require.NoError(t, err)

	assert.Nil(t, cfg.Minify)
	assert.Nil(t, cfg.BOM)
	assert.Empty(t, cfg.Engine)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.NewLoader().Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &domain.Config{}, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "minify: [unterminated\n")

	_, err := config.NewLoader().Load(tmpDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigParseFailed))
}

func TestLoad_ReadFailure(t *testing.T) {
	tmpDir := t.TempDir()
	// A directory in place of the file cannot be read.
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, domain.ConfigFileName), 0o750))

	_, err := config.NewLoader().Load(tmpDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigReadFailed))
}

func TestLoad_FeedsPackOptions(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "baseDir: lib\nminify: false\n")

	cfg, err := config.Load(filepath.Join(tmpDir, domain.ConfigFileName))
	require.NoError(t, err)

	opts, err := cfg.PackOptions(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "lib"), opts.Bundle.BaseDir)
	assert.False(t, opts.Bundle.Minify)
	assert.True(t, opts.Write.BOM)
}
