package scan

import (
	"context"
	"fmt"
	"strings"

	"github.com/backmassage/muxscan/internal/ffmpeg"
	"github.com/backmassage/muxscan/internal/report"
)

// Transcript markers. Widths match the historical log format.
const (
	errorOpen    = "*** ERROR: ****************"
	errorClose   = "***************************"
	summaryRule  = "***********************************************************"
	badFilesOpen = "BAD FILES **************************************************"
	badFilesRule = "************************************************************"
)

// Logger is the minimal diagnostic interface the runner needs. Defined here
// so scan does not import the logging package.
type Logger interface {
	Debug(string, ...interface{})
	Warn(string, ...interface{})
}

// Runner validates files one at a time and reports progress.
type Runner struct {
	Validator ffmpeg.Validator
	Reporter  report.Reporter
	// Log is optional.
	Log Logger
	// LogPath, when set, is announced at the end of the transcript.
	LogPath string
}

// Scan discovers files under root matching pattern and runs them.
func (r *Runner) Scan(ctx context.Context, root, pattern string) (Result, error) {
	files, err := Discover(root, pattern, func(path string, err error) {
		if r.Log != nil {
			r.Log.Warn("Skipping unreadable entry %s: %v", path, err)
		}
	})
	if err != nil {
		return Result{}, fmt.Errorf("discover %s: %w", root, err)
	}
	if r.Log != nil {
		r.Log.Debug("Discovered %d file(s) under %s", len(files), root)
	}
	return r.Run(ctx, files)
}

// Run validates files in the given order and writes the transcript. A
// validator that cannot be started, or a transcript write failure, aborts the
// run; the partial Result is returned alongside the error.
func (r *Runner) Run(ctx context.Context, files []string) (Result, error) {
	var res Result

	for _, path := range files {
		if err := r.emit("file: " + path); err != nil {
			return res, err
		}

		out, err := r.Validator.Validate(ctx, path)
		if err != nil {
			return res, fmt.Errorf("validate %s: %w", path, err)
		}
		res.Processed++

		if out.OK {
			continue
		}
		if r.Log != nil {
			r.Log.Debug("%s: validator exit status %d", path, out.ExitCode)
		}
		res.Bad = append(res.Bad, path)
		if err := r.emit(errorOpen, strings.TrimSpace(out.ErrorText), errorClose); err != nil {
			return res, err
		}
	}

	if err := r.summary(res); err != nil {
		return res, err
	}
	return res, nil
}

func (r *Runner) summary(res Result) error {
	err := r.emit(
		summaryRule,
		fmt.Sprintf("Files Processed: %d", res.Processed),
		fmt.Sprintf("Bad Files:       %d", len(res.Bad)),
		summaryRule,
	)
	if err != nil {
		return err
	}

	if !res.OK() {
		if err := r.emit("", badFilesOpen); err != nil {
			return err
		}
		if err := r.emit(res.Bad...); err != nil {
			return err
		}
		if err := r.emit(badFilesRule); err != nil {
			return err
		}
	}

	if r.LogPath != "" {
		return r.emit("", "*** Log file: "+r.LogPath, "")
	}
	return nil
}

func (r *Runner) emit(lines ...string) error {
	for _, line := range lines {
		if err := r.Reporter.Record(line); err != nil {
			return fmt.Errorf("record transcript: %w", err)
		}
	}
	return nil
}
