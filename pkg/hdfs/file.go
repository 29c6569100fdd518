package hdfs

import (
	"fmt"
	"io"
	"unsafe"
)

// File is an open file on a connected filesystem. It implements [io.Reader]
// and [io.Writer] over the native read/write calls and must be closed through
// [File.Close] to release the native file handle.
type File struct {
	fs   *FS
	raw  unsafe.Pointer
	path string
}

// Path returns the path the file was opened at.
func (fl *File) Path() string {
	return fl.path
}

// Read reads up to len(p) bytes into p, returning [io.EOF] at end of file.
func (fl *File) Read(p []byte) (int, error) {
	if fl.raw == nil {
		return 0, fmt.Errorf("(hdfs) read %q: %w", fl.path, ErrFileClosed)
	}

	n := fl.fs.ops.Read(fl.fs.raw, fl.raw, p)
	if n < 0 {
		return 0, fmt.Errorf("(hdfs) read %q: %w", fl.path, ErrOperationFailed)
	}

	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}

	return n, nil
}

// Write writes len(p) bytes from p to the file.
func (fl *File) Write(p []byte) (int, error) {
	if fl.raw == nil {
		return 0, fmt.Errorf("(hdfs) write %q: %w", fl.path, ErrFileClosed)
	}

	written := 0
	for written < len(p) {
		n := fl.fs.ops.Write(fl.fs.raw, fl.raw, p[written:])
		if n <= 0 {
			return written, fmt.Errorf("(hdfs) write %q: %w", fl.path, ErrOperationFailed)
		}
		written += n
	}

	return written, nil
}

// Flush forces any buffered writes out to the filesystem.
func (fl *File) Flush() error {
	if fl.raw == nil {
		return fmt.Errorf("(hdfs) flush %q: %w", fl.path, ErrFileClosed)
	}

	if rc := fl.fs.ops.Flush(fl.fs.raw, fl.raw); rc != 0 {
		return fmt.Errorf("(hdfs) flush %q: %w", fl.path, ErrOperationFailed)
	}

	return nil
}

// Close releases the native file handle. Closing an already closed [File] is
// a no-op.
func (fl *File) Close() error {
	if fl.raw == nil {
		return nil
	}

	rc := fl.fs.ops.CloseFile(fl.fs.raw, fl.raw)
	fl.raw = nil

	if rc != 0 {
		return fmt.Errorf("(hdfs) close %q: %w", fl.path, ErrOperationFailed)
	}

	return nil
}
