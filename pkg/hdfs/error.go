package hdfs

import "errors"

var (
	// ErrInvalidPath is an error that occurs when a path string contains an
	// embedded null byte and cannot be passed across the native boundary.
	ErrInvalidPath = errors.New("path contains an embedded null byte")

	// ErrInvalidEndpoint is an error that occurs when an endpoint URI cannot
	// be parsed into a connectable filesystem endpoint.
	ErrInvalidEndpoint = errors.New("invalid filesystem endpoint")

	// ErrConnectFailed is an error that occurs when the native client could
	// not establish a connection to a filesystem endpoint.
	ErrConnectFailed = errors.New("failed to connect to filesystem")

	// ErrOperationFailed is an error that occurs when a native call signals
	// failure; the native boundary reports no further detail.
	ErrOperationFailed = errors.New("native filesystem operation failed")

	// ErrFileClosed is an error that occurs when a [File] is used after its
	// native handle was already closed.
	ErrFileClosed = errors.New("file handle is closed")
)
