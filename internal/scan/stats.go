package scan

// Result is the outcome of one scan. Bad holds the paths the validator
// rejected, in the order they were encountered.
type Result struct {
	Processed int
	Bad       []string
}

// OK reports whether no bad files were found.
func (r Result) OK() bool { return len(r.Bad) == 0 }

// ExitCode maps the result to the process exit status: 0 when every file
// validated, 1 otherwise.
func (r Result) ExitCode() int {
	if r.OK() {
		return 0
	}
	return 1
}
