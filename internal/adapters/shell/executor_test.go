package shell_test

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wshpack/internal/adapters/shell"
	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
}

func TestExecutor_Execute_StreamsToWriters(t *testing.T) {
	skipWithoutShell(t)
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	var stdout, stderr bytes.Buffer
	err := executor.Execute(t.Context(), []string{"sh", "-c", "echo out; echo err >&2"}, t.TempDir(), &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_MultiLineOutputToLogger(t *testing.T) {
	skipWithoutShell(t)
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Info("line1"),
		mockLogger.EXPECT().Info("line2"),
	)

	executor := shell.NewExecutor(mockLogger)
	err := executor.Execute(t.Context(), []string{"sh", "-c", "echo line1; echo line2"}, t.TempDir(), nil, &bytes.Buffer{})
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedOutput(t *testing.T) {
	skipWithoutShell(t)
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("part1part2")
	mockLogger.EXPECT().Info("tail")

	executor := shell.NewExecutor(mockLogger)
	script := "printf part1; sleep 0.1; printf 'part2\\n'; printf tail"
	err := executor.Execute(t.Context(), []string{"sh", "-c", script}, t.TempDir(), nil, &bytes.Buffer{})
	require.NoError(t, err)
}

func TestExecutor_Execute_ExitCode(t *testing.T) {
	skipWithoutShell(t)
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	err := executor.Execute(t.Context(), []string{"sh", "-c", "exit 3"}, t.TempDir(), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEngineFailed))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
}

func TestExecutor_Execute_MissingBinary(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	err := executor.Execute(t.Context(), []string{"wshpack-no-such-engine"}, t.TempDir(), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEngineFailed))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, -1, zErr.Metadata()["exit_code"])
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	err := executor.Execute(t.Context(), nil, "", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEngineRequired))
}
