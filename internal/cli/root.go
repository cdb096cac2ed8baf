// Package cli wires the muxscan command: a folder scan by default, with
// --check and --version as utility modes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/backmassage/muxscan/internal/config"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
)

// errBadFiles marks a scan that completed but found invalid files. It maps to
// exit status 1 without an extra error message; the transcript already says
// which files failed.
var errBadFiles = errors.New("bad files found")

func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "muxscan <folder>",
		Short: "Find corrupt video files by decoding them with ffmpeg",
		Long: "muxscan walks a folder recursively, decodes every .mp4 file with\n" +
			"\"ffmpeg -v error -i <file> -f null -\", and reports the files that fail.\n" +
			"The transcript is mirrored to <log-dir>/ffmpeg-<folder>.log.\n\n" +
			"Exit status is 0 when every file decodes cleanly and 1 otherwise.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case cfg.ShowVersion:
				printVersion(cmd.OutOrStdout())
				return nil
			case cfg.CheckOnly:
				return runCheck(cmd, &cfg)
			}
			if len(args) == 1 {
				cfg.Folder = args[0]
			}
			return runScan(cmd, &cfg)
		},
	}
	config.BindFlags(cmd.Flags(), &cfg)
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the command tree against os.Args and returns the process exit
// status.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errBadFiles):
		return 1
	default:
		fmt.Fprintf(stderr, "muxscan: %v\n", err)
		return 1
	}
}
