package config

// This file binds the optional flags onto a pflag set owned by the cobra
// command. The folder itself is positional and set by the caller.

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// BindFlags registers --ffmpeg, --log-dir, --color, -v/--verbose, -c/--check
// and --version on fs, writing straight into cfg so DefaultConfig values hold
// unless overridden. The utility modes are flags rather than subcommands so
// that any folder name, including "check" or "version", is scanned.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Validator, "ffmpeg", cfg.Validator, "Validator executable (name on PATH or full path)")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Directory for the ffmpeg-<folder>.log transcript")
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color", "Console colors: auto | always | never")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose diagnostics")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run validator diagnostics and exit")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version and exit")
}

// pflag.Value adapter so ColorMode can be used with fs.Var.
type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
