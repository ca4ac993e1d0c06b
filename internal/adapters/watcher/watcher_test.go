package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wshpack/internal/adapters/fs"
	"go.trai.ch/wshpack/internal/adapters/watcher"
	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/wshpack/internal/core/ports/mocks"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// nextEvent returns the first event for which match is true.
func nextEvent(t *testing.T, events <-chan ports.WatchEvent, match func(ports.WatchEvent) bool) ports.WatchEvent {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed")
			if match(ev) {
				return ev
			}
		case <-timeout:
			require.FailNow(t, "timed out waiting for event")
		}
	}
}

func startWatcher(t *testing.T, roots ...string) (<-chan ports.WatchEvent, func()) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w := watcher.NewWatcher(fs.NewWalker(), log)
	ctx, cancel := context.WithCancel(t.Context())
	require.NoError(t, w.Start(ctx, roots...))

	out := make(chan ports.WatchEvent, 100)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(out)
		for ev := range w.Events() {
			out <- ev
		}
	}()

	return out, func() {
		require.NoError(t, w.Stop())
		cancel()
		<-done
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	root := t.TempDir()
	script := filepath.Join(root, "main.js")
	require.NoError(t, os.WriteFile(script, []byte("var a;"), 0o600))

	events, stop := startWatcher(t, root)
	defer stop()

	require.NoError(t, os.WriteFile(script, []byte("var b;"), 0o600))

	ev := nextEvent(t, events, func(ev ports.WatchEvent) bool { return ev.Path == script })
	assert.Contains(t, []ports.WatchOp{ports.OpWrite, ports.OpCreate}, ev.Operation)
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	root := t.TempDir()

	events, stop := startWatcher(t, root)
	defer stop()

	sub := filepath.Join(root, "lib")
	require.NoError(t, os.Mkdir(sub, 0o750))
	nextEvent(t, events, func(ev ports.WatchEvent) bool { return ev.Path == sub })

	nested := filepath.Join(sub, "util.vbs")
	require.NoError(t, os.WriteFile(nested, []byte("Dim a"), 0o600))

	nextEvent(t, events, func(ev ports.WatchEvent) bool { return ev.Path == nested })
}

func TestWatcher_SkipsStateDirectory(t *testing.T) {
	root := t.TempDir()
	state := filepath.Join(root, domain.StateDirName)
	require.NoError(t, os.Mkdir(state, 0o750))

	events, stop := startWatcher(t, root)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(state, "entry"), []byte("{}"), 0o600))
	marker := filepath.Join(root, "marker.js")
	require.NoError(t, os.WriteFile(marker, nil, 0o600))

	ev := nextEvent(t, events, func(ports.WatchEvent) bool { return true })
	assert.Equal(t, marker, ev.Path)
}

func TestWatcher_StopBeforeStart(t *testing.T) {
	w := watcher.NewWatcher(fs.NewWalker(), nil)
	assert.NoError(t, w.Stop())
}
