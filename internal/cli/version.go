package cli

import (
	"fmt"
	"io"
)

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "muxscan %s (%s)\n", version, commit)
}
