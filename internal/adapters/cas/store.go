// Package cas implements the build info store used to skip unchanged jobs.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore with one JSON file per job
// under <root>/.wshpack/store.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the build info for a given job key.
func (s *Store) Get(root, jobKey string) (*domain.BuildInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filename := s.filename(root, jobKey)
	data, err := os.ReadFile(filename) //nolint:gosec // Path is built from a hashed key
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreReadFailed, err), "path", filename)
	}

	var info domain.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreUnmarshalFailed, err), "path", filename)
	}

	return &info, nil
}

// Put stores the build info.
func (s *Store) Put(root string, info domain.BuildInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreMarshalFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	filename := s.filename(root, info.JobKey)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreCreateFailed, err), "path", filename)
	}

	//nolint:gosec // Path is built from a hashed key
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(fmt.Errorf("%w: %w", domain.ErrStoreWriteFailed, err), "path", filename)
	}

	return nil
}

func (s *Store) filename(root, jobKey string) string {
	sum := sha256.Sum256([]byte(jobKey))
	return filepath.Join(root, domain.DefaultStorePath(), hex.EncodeToString(sum[:])+".json")
}
