package ffmpeg

import "errors"

// ErrValidatorStart is returned (wrapped) when the validator process could not
// be launched at all: missing executable, permission denied, and so on. It is
// distinct from a file failing validation, which is reported via [Result].
var ErrValidatorStart = errors.New("validator could not be started")
