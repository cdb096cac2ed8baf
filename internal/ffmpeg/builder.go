package ffmpeg

// Build returns the validator argument slice for one input file, without the
// executable name. The argument list is fixed: errors-only logging, read the
// input, decode into the null muxer on stdout.
func Build(path string) []string {
	args := make([]string, 0, 7)
	args = append(args, "-v", "error", "-i", path)
	return append(args, NullOutput()...)
}

// NullOutput is the output section shared by validation and the check
// self-test: decode every stream, write nothing.
func NullOutput() []string {
	return []string{"-f", "null", "-"}
}
