package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wshpack/internal/adapters/cas"
	"go.trai.ch/wshpack/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	info := domain.BuildInfo{
		JobKey:     "/proj/Package.wsf#dist/run.wsf",
		OutputPath: "/proj/dist/run.wsf",
		InputHash:  "abc",
		OutputHash: "def",
		Timestamp:  time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, store.Put(root, info))

	got, err := store.Get(root, info.JobKey)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info, *got)

	entries, err := os.ReadDir(filepath.Join(root, ".wshpack", "store"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_GetMissing(t *testing.T) {
	got, err := cas.NewStore().Get(t.TempDir(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetCorrupt(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()
	require.NoError(t, store.Put(root, domain.BuildInfo{JobKey: "job"}))

	dir := filepath.Join(root, ".wshpack", "store")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, entries[0].Name()), []byte("{ invalid json"), 0o600))

	_, err = store.Get(root, "job")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnmarshalFailed)
}

func TestStore_PutOverwrites(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(root, domain.BuildInfo{JobKey: "job", InputHash: "1"}))
	require.NoError(t, store.Put(root, domain.BuildInfo{JobKey: "job", InputHash: "2"}))

	got, err := store.Get(root, "job")
	require.NoError(t, err)
	assert.Equal(t, "2", got.InputHash)
}
