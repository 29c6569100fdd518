package transfer

import "errors"

var (
	// ErrInvalidPath is an error that occurs when a path string contains an
	// embedded null byte. It is detected locally, before any native call is
	// attempted, as C string conversion would otherwise silently truncate.
	ErrInvalidPath = errors.New("path contains an embedded null byte")

	// ErrOperationFailed is an error that occurs when the native transfer
	// call returns a non-zero status. The native boundary communicates only
	// pass/fail, so no finer-grained cause is available.
	ErrOperationFailed = errors.New("native transfer operation failed")

	// ErrChecksumMismatch is an error that occurs when post-copy verification
	// finds differing content checksums on the source and destination side.
	ErrChecksumMismatch = errors.New("source and destination checksums differ")
)
