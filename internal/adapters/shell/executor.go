// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/wshpack/internal/core/domain"
	"go.trai.ch/wshpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs command in dir. Output goes to stdout and stderr; a nil
// writer sends the stream to the logger line by line.
func (e *Executor) Execute(ctx context.Context, command []string, dir string, stdout, stderr io.Writer) error {
	if len(command) == 0 || command[0] == "" {
		return zerr.Wrap(domain.ErrEngineRequired, "no command given")
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...) //nolint:gosec // user provided command
	cmd.Dir = dir

	outLog := &logWriter{logger: e.logger, level: "info"}
	errLog := &logWriter{logger: e.logger, level: "error"}
	defer outLog.Flush()
	defer errLog.Flush()

	cmd.Stdout = stdout
	if stdout == nil {
		cmd.Stdout = outLog
	}
	cmd.Stderr = stderr
	if stderr == nil {
		cmd.Stderr = errLog
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.Wrap(domain.ErrEngineFailed, err.Error())
		wrapped = zerr.With(wrapped, "command", strings.Join(command, " "))
		return zerr.With(wrapped, "exit_code", exitCode)
	}

	return nil
}

// logWriter forwards complete lines to the logger.
type logWriter struct {
	mu     sync.Mutex
	logger ports.Logger
	level  string
	buf    bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Keep the partial line for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(line)
	}
	return len(p), nil
}

// Flush emits a trailing line that was not terminated.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimRight(line, "\r\n")
	if w.level == "info" {
		w.logger.Info(line)
	} else {
		w.logger.Error(zerr.New(line))
	}
}
