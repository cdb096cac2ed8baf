package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Result holds the outcome of validating a single file.
type Result struct {
	OK        bool
	ExitCode  int
	ErrorText string // Captured stderr, untrimmed.
}

// Validator decides whether a media file is intact. Implementations return a
// non-nil error only for infrastructure failures; a corrupt file is a Result
// with OK == false.
type Validator interface {
	Validate(ctx context.Context, path string) (Result, error)
}

// Executor is the ffmpeg-backed [Validator].
type Executor struct {
	// Bin is the executable name or path, e.g. "ffmpeg".
	Bin string
	// Tee, when non-nil, also receives the validator's stderr in real time.
	Tee io.Writer
}

// NewExecutor returns an Executor for bin.
func NewExecutor(bin string) *Executor {
	return &Executor{Bin: bin}
}

// Validate runs the validator against path and waits for it to exit. stderr
// is captured for reporting; stdout is discarded.
func (e *Executor) Validate(ctx context.Context, path string) (Result, error) {
	cmd := exec.CommandContext(ctx, e.Bin, Build(path)...)

	var stderrBuf bytes.Buffer
	if e.Tee != nil {
		cmd.Stderr = io.MultiWriter(&stderrBuf, e.Tee)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	if err == nil {
		return Result{OK: true, ErrorText: stderrBuf.String()}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{
			OK:        false,
			ExitCode:  exitErr.ExitCode(),
			ErrorText: stderrBuf.String(),
		}, nil
	}
	return Result{}, fmt.Errorf("%w: %s: %v", ErrValidatorStart, e.Bin, err)
}
