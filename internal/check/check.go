// Package check provides validator diagnostics (the check subcommand) and the
// pre-scan dependency check (CheckDeps).
package check

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/backmassage/muxscan/internal/config"
	"github.com/backmassage/muxscan/internal/ffmpeg"
)

// Sentinel errors returned by CheckDeps.
var (
	ErrValidatorNotFound = errors.New("validator executable not found")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// stays testable with a recording logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// CheckDeps is the pre-scan validation: the configured validator must
// resolve to an executable, either on PATH or as a direct path. Returns the
// resolved location.
func CheckDeps(cfg *config.Config) (string, error) {
	path, err := exec.LookPath(cfg.Validator)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrValidatorNotFound, cfg.Validator)
	}
	return path, nil
}

// RunCheck prints where the validator lives, its version, whether the null
// muxer is available, and whether a synthetic clip decodes cleanly. It
// returns false if any required step failed.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Validator Check ===")

	path, err := CheckDeps(cfg)
	if err != nil {
		log.Error("%v", err)
		return false
	}
	log.Success("validator: %s", path)

	ok := checkVersion(path, log)
	ok = checkNullMuxer(path, log) && ok
	ok = checkSelfTest(path, log) && ok
	return ok
}

// checkVersion logs the first line of "<bin> -version".
func checkVersion(bin string, log Logger) bool {
	out, err := exec.Command(bin, "-version").Output()
	if err != nil {
		log.Error("%s -version failed: %v", bin, err)
		return false
	}
	log.Success("version: %s", firstLine(string(out)))
	return true
}

// checkNullMuxer verifies the null muxer used by validation is compiled in.
func checkNullMuxer(bin string, log Logger) bool {
	out, err := exec.Command(bin, "-hide_banner", "-muxers").Output()
	if err != nil {
		log.Warn("Could not list muxers: %v", err)
		return true
	}
	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && strings.Contains(fields[0], "E") && fields[1] == "null" {
			log.Success("null muxer available")
			return true
		}
	}
	log.Error("null muxer not available; validation cannot run")
	return false
}

// checkSelfTest decodes a short synthetic clip into the null muxer.
func checkSelfTest(bin string, log Logger) bool {
	log.Info("Testing decode to null muxer...")
	args := []string{
		"-hide_banner", "-nostdin",
		"-f", "lavfi", "-i", "testsrc=duration=0.1:size=64x64:rate=10",
	}
	args = append(args, ffmpeg.NullOutput()...)

	cmd := exec.Command(bin, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		log.Error("Decode self-test failed: %v", err)
		log.Debug("self-test stderr: %s", strings.TrimSpace(stderr.String()))
		return false
	}
	log.Success("Decode self-test passed")
	return true
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx > 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
