// Package ffmpeg wraps the external decoder used to validate media files.
//
// A file is validated by decoding it end to end into the null muxer with
// logging reduced to errors:
//
//	ffmpeg -v error -i <file> -f null -
//
// Exit status 0 means the file decoded cleanly; any other status marks it
// bad and the captured stderr explains why. A binary that cannot be started
// at all is reported as [ErrValidatorStart], never as a bad file.
//
// The process runs without a timeout. A decoder that hangs blocks the caller
// until it exits.
package ffmpeg
