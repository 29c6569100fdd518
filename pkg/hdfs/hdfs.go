// Package hdfs implements filesystem handles over the native
// distributed-filesystem client library. An [FS] wraps one connected native
// handle; a [Registry] caches one connection per endpoint. The actual
// filesystem implementation (storage, replication, namenode protocol, data
// consistency) lives entirely inside the wrapped native library.
package hdfs

import (
	"fmt"
	"os"
	"strings"
	"unsafe"
)

type clientProvider interface {
	Connect(host string, port uint16) unsafe.Pointer
	ConnectAsUser(host string, port uint16, user string) unsafe.Pointer
	Disconnect(fs unsafe.Pointer) int
	Exists(fs unsafe.Pointer, path string) int
	Delete(fs unsafe.Pointer, path string, recursive bool) int
	CreateDirectory(fs unsafe.Pointer, path string) int
	Rename(fs unsafe.Pointer, oldPath string, newPath string) int
	OpenFile(fs unsafe.Pointer, path string, flags int, bufferSize int, replication int16, blockSize int32) unsafe.Pointer
	CloseFile(fs unsafe.Pointer, file unsafe.Pointer) int
	Read(fs unsafe.Pointer, file unsafe.Pointer, buf []byte) int
	Write(fs unsafe.Pointer, file unsafe.Pointer, buf []byte) int
	Flush(fs unsafe.Pointer, file unsafe.Pointer) int
	FileSize(fs unsafe.Pointer, path string) int64
}

// FS is a handle to one connected filesystem instance. It exclusively owns the
// underlying native resource from [NewFS] until [FS.Disconnect]; the raw
// pointer is only ever handed out through [FS.Raw] for single-call scopes.
//
// The native library makes no guarantee about concurrent calls against one
// shared handle; sharing an [FS] across goroutines requires external
// synchronization by the caller.
type FS struct {
	endpoint Endpoint
	raw      unsafe.Pointer
	ops      clientProvider
}

// NewFS connects to the given [Endpoint] through the native client and returns
// a pointer to a new [FS] owning the established connection.
func NewFS(endpoint Endpoint, ops clientProvider) (*FS, error) {
	var raw unsafe.Pointer

	switch {
	case endpoint.Scheme == SchemeFile:
		raw = ops.Connect("", 0)
	case endpoint.User != "":
		raw = ops.ConnectAsUser(endpoint.Host, endpoint.Port, endpoint.User)
	default:
		raw = ops.Connect(endpoint.Host, endpoint.Port)
	}

	if raw == nil {
		return nil, fmt.Errorf("(hdfs) %s: %w", endpoint.Key(), ErrConnectFailed)
	}

	return &FS{
		endpoint: endpoint,
		raw:      raw,
		ops:      ops,
	}, nil
}

// Endpoint returns the [Endpoint] the handle is connected to.
func (f *FS) Endpoint() Endpoint {
	return f.endpoint
}

// Raw returns the raw native handle for the scope of a single native call.
// Callers must not store the pointer beyond the duration of that call.
func (f *FS) Raw() unsafe.Pointer {
	return f.raw
}

// Exists reports whether a path exists on the filesystem.
func (f *FS) Exists(path string) (bool, error) {
	if err := validatePath(path); err != nil {
		return false, err
	}

	return f.ops.Exists(f.raw, path) == 0, nil
}

// Delete removes a path from the filesystem.
func (f *FS) Delete(path string, recursive bool) error {
	if err := validatePath(path); err != nil {
		return err
	}

	if rc := f.ops.Delete(f.raw, path, recursive); rc != 0 {
		return fmt.Errorf("(hdfs) delete %q: %w", path, ErrOperationFailed)
	}

	return nil
}

// Mkdir creates a directory (including missing parents) on the filesystem.
func (f *FS) Mkdir(path string) error {
	if err := validatePath(path); err != nil {
		return err
	}

	if rc := f.ops.CreateDirectory(f.raw, path); rc != 0 {
		return fmt.Errorf("(hdfs) mkdir %q: %w", path, ErrOperationFailed)
	}

	return nil
}

// Rename moves a path within the same filesystem's namespace.
func (f *FS) Rename(oldPath string, newPath string) error {
	if err := validatePath(oldPath); err != nil {
		return err
	}
	if err := validatePath(newPath); err != nil {
		return err
	}

	if rc := f.ops.Rename(f.raw, oldPath, newPath); rc != 0 {
		return fmt.Errorf("(hdfs) rename %q -> %q: %w", oldPath, newPath, ErrOperationFailed)
	}

	return nil
}

// Size returns the size in bytes of the object at the given path.
func (f *FS) Size(path string) (int64, error) {
	if err := validatePath(path); err != nil {
		return 0, err
	}

	size := f.ops.FileSize(f.raw, path)
	if size < 0 {
		return 0, fmt.Errorf("(hdfs) size %q: %w", path, ErrOperationFailed)
	}

	return size, nil
}

// Open opens an existing file for reading.
func (f *FS) Open(path string) (*File, error) {
	return f.openFile(path, os.O_RDONLY)
}

// Create opens a file for writing, creating it if necessary.
func (f *FS) Create(path string) (*File, error) {
	return f.openFile(path, os.O_WRONLY)
}

// CreateEmpty creates an empty file at the given path.
func (f *FS) CreateEmpty(path string) error {
	file, err := f.Create(path)
	if err != nil {
		return err
	}

	return file.Close()
}

func (f *FS) openFile(path string, flags int) (*File, error) {
	if err := validatePath(path); err != nil {
		return nil, err
	}

	raw := f.ops.OpenFile(f.raw, path, flags, 0, 0, 0)
	if raw == nil {
		return nil, fmt.Errorf("(hdfs) open %q: %w", path, ErrOperationFailed)
	}

	return &File{
		fs:   f,
		raw:  raw,
		path: path,
	}, nil
}

// Disconnect releases the underlying native connection. The handle must not
// be used afterwards.
func (f *FS) Disconnect() error {
	if rc := f.ops.Disconnect(f.raw); rc != 0 {
		return fmt.Errorf("(hdfs) disconnect %s: %w", f.endpoint.Key(), ErrOperationFailed)
	}

	f.raw = nil

	return nil
}

// validatePath rejects paths that cannot be represented as null-terminated
// byte sequences; conversion would otherwise silently truncate on the native
// side.
func validatePath(path string) error {
	if strings.IndexByte(path, 0) >= 0 {
		return fmt.Errorf("(hdfs) %w", ErrInvalidPath)
	}

	return nil
}
