// Package config holds runtime configuration: defaults, flag binding, and
// validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ColorMode controls ANSI color output on the console.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Sentinel errors returned by [Config.ValidateFolder].
var (
	ErrFolderNotFound = errors.New("folder not found")
	ErrNotDirectory   = errors.New("not a directory")
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [BindFlags] and the positional argument before being passed
// (by pointer) to packages that need it.
type Config struct {
	// Folder is the root to scan (positional argument).
	Folder string

	// Validator settings.
	Validator string // Default: "ffmpeg". Bare name is resolved on PATH.
	Pattern   string // Fixed: "**/*.mp4", matched case-insensitively.

	// Output.
	LogDir    string    // Default: os.TempDir().
	ColorMode ColorMode // Default: "auto".
	Verbose   bool

	// Utility modes; both skip the scan.
	CheckOnly   bool // Run validator diagnostics and exit.
	ShowVersion bool // Print the version and exit.
}

// DefaultConfig returns the stock settings: ffmpeg on PATH, *.mp4 files, logs
// in the system temp directory.
func DefaultConfig() Config {
	return Config{
		Validator: "ffmpeg",
		Pattern:   "**/*.mp4",
		LogDir:    os.TempDir(),
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing separators from a directory path.
// A filesystem root is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	trimmed := strings.TrimRight(path, `/\`)
	if trimmed == "" && path != "" {
		return path[:1]
	}
	if vol := filepath.VolumeName(path); vol != "" && trimmed == vol {
		return path
	}
	return trimmed
}

// FolderName returns the last path segment of the absolute scan folder,
// which names the log file, so "." and ".." name the directory they refer
// to. Both separators are honored so Windows-style arguments work on any
// platform.
func (c *Config) FolderName() string {
	dir := NormalizeDirArg(c.Folder)
	if abs, err := filepath.Abs(dir); err == nil && dir != "" {
		dir = abs
	}
	if i := strings.LastIndexAny(dir, `/\`); i >= 0 && i < len(dir)-1 {
		return dir[i+1:]
	}
	return strings.TrimRight(dir, `/\:`)
}

// LogPath returns the transcript location: <LogDir>/ffmpeg-<folder>.log.
func (c *Config) LogPath() string {
	name := c.FolderName()
	if name == "" {
		name = "root"
	}
	return filepath.Join(c.LogDir, "ffmpeg-"+name+".log")
}

// Validate checks enum fields and the discovery pattern. Unless checkOnly is
// set, it also requires a scan folder.
func (c *Config) Validate(checkOnly bool) error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if strings.TrimSpace(c.Validator) == "" {
		return errors.New("validator must not be empty")
	}
	if !doublestar.ValidatePattern(c.Pattern) {
		return fmt.Errorf("invalid file pattern %q", c.Pattern)
	}
	if c.LogDir == "" {
		return errors.New("log directory must not be empty")
	}

	if checkOnly {
		return nil
	}
	if c.Folder == "" {
		return errors.New("need exactly one folder argument")
	}
	return nil
}

// ValidateFolder ensures the scan folder exists and is a directory.
func (c *Config) ValidateFolder() error {
	fi, err := os.Stat(c.Folder)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFolderNotFound, c.Folder)
		}
		return fmt.Errorf("cannot stat %s: %w", c.Folder, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, c.Folder)
	}
	return nil
}
