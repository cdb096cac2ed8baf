// Command muxscan is the CLI entrypoint for the muxscan corruption scanner.
//
// It scans a folder for video files, decodes each one with ffmpeg, and exits
// non-zero when any file fails to decode.
package main

import (
	"os"

	"github.com/backmassage/muxscan/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
