// Package scan discovers media files under a folder, validates each one in
// turn, and writes the transcript and summary through a report.Reporter.
//
// Processing is strictly sequential: one validator process runs to
// completion before the next file starts. Files are processed in directory
// walk order, which is not re-sorted.
package scan
