// Package native is the cgo boundary to the libhdfs client library. It exposes
// one Go-typed method per consumed native entry point and performs nothing
// beyond argument marshalling: path strings are converted to null-terminated C
// buffers scoped to the single call, raw handles are passed through untouched
// and integer status codes are returned unchanged.
//
// The package does not validate its inputs; callers are expected to reject
// strings containing embedded null bytes before reaching this boundary, as C
// string conversion would otherwise silently truncate them on the native side.
package native

/*
#cgo LDFLAGS: -lhdfs
#include <stdlib.h>
#include "libhdfs.h"
*/
import "C"

import (
	"unsafe"
)

// Client is the implementation wrapping the libhdfs entry points. Each method
// is a single synchronous, blocking native call with no retries, timeouts or
// cancellation. Whether concurrent calls against a shared filesystem handle
// are safe is a property of the linked libhdfs, not of this wrapper.
type Client struct{}

// Connect wraps around hdfsConnect. An empty host connects to the local
// filesystem through the same native interface. A nil return means failure.
func (*Client) Connect(host string, port uint16) unsafe.Pointer {
	if host == "" {
		return unsafe.Pointer(C.hdfsConnect(nil, C.tPort(port)))
	}

	cHost := C.CString(host)
	defer C.free(unsafe.Pointer(cHost))

	return unsafe.Pointer(C.hdfsConnect(cHost, C.tPort(port)))
}

// ConnectAsUser wraps around hdfsConnectAsUser. A nil return means failure.
func (*Client) ConnectAsUser(host string, port uint16, user string) unsafe.Pointer {
	cHost := C.CString(host)
	defer C.free(unsafe.Pointer(cHost))

	cUser := C.CString(user)
	defer C.free(unsafe.Pointer(cUser))

	return unsafe.Pointer(C.hdfsConnectAsUser(cHost, C.tPort(port), cUser))
}

// Disconnect wraps around hdfsDisconnect.
func (*Client) Disconnect(fs unsafe.Pointer) int {
	return int(C.hdfsDisconnect(C.hdfsFS(fs)))
}

// Copy wraps around hdfsCopy, duplicating data from a source path on one
// filesystem to a destination path on another (or the same) filesystem.
func (*Client) Copy(srcFS unsafe.Pointer, src string, dstFS unsafe.Pointer, dst string) int {
	cSrc := C.CString(src)
	defer C.free(unsafe.Pointer(cSrc))

	cDst := C.CString(dst)
	defer C.free(unsafe.Pointer(cDst))

	return int(C.hdfsCopy(C.hdfsFS(srcFS), cSrc, C.hdfsFS(dstFS), cDst))
}

// Move wraps around hdfsMove, relocating data from a source path on one
// filesystem to a destination path on another (or the same) filesystem.
func (*Client) Move(srcFS unsafe.Pointer, src string, dstFS unsafe.Pointer, dst string) int {
	cSrc := C.CString(src)
	defer C.free(unsafe.Pointer(cSrc))

	cDst := C.CString(dst)
	defer C.free(unsafe.Pointer(cDst))

	return int(C.hdfsMove(C.hdfsFS(srcFS), cSrc, C.hdfsFS(dstFS), cDst))
}

// Exists wraps around hdfsExists. A zero return means the path exists.
func (*Client) Exists(fs unsafe.Pointer, path string) int {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	return int(C.hdfsExists(C.hdfsFS(fs), cPath))
}

// Delete wraps around hdfsDelete.
func (*Client) Delete(fs unsafe.Pointer, path string, recursive bool) int {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	cRecursive := C.int(0)
	if recursive {
		cRecursive = C.int(1)
	}

	return int(C.hdfsDelete(C.hdfsFS(fs), cPath, cRecursive))
}

// CreateDirectory wraps around hdfsCreateDirectory.
func (*Client) CreateDirectory(fs unsafe.Pointer, path string) int {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	return int(C.hdfsCreateDirectory(C.hdfsFS(fs), cPath))
}

// Rename wraps around hdfsRename.
func (*Client) Rename(fs unsafe.Pointer, oldPath string, newPath string) int {
	cOldPath := C.CString(oldPath)
	defer C.free(unsafe.Pointer(cOldPath))

	cNewPath := C.CString(newPath)
	defer C.free(unsafe.Pointer(cNewPath))

	return int(C.hdfsRename(C.hdfsFS(fs), cOldPath, cNewPath))
}

// OpenFile wraps around hdfsOpenFile. A nil return means failure. Zero values
// for bufferSize, replication and blockSize select the native defaults.
func (*Client) OpenFile(fs unsafe.Pointer, path string, flags int, bufferSize int, replication int16, blockSize int32) unsafe.Pointer {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	return unsafe.Pointer(C.hdfsOpenFile(C.hdfsFS(fs), cPath, C.int(flags),
		C.int(bufferSize), C.short(replication), C.tSize(blockSize)))
}

// CloseFile wraps around hdfsCloseFile.
func (*Client) CloseFile(fs unsafe.Pointer, file unsafe.Pointer) int {
	return int(C.hdfsCloseFile(C.hdfsFS(fs), C.hdfsFile(file)))
}

// Read wraps around hdfsRead. It returns the number of bytes read, zero at end
// of file or a negative value on failure.
func (*Client) Read(fs unsafe.Pointer, file unsafe.Pointer, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}

	return int(C.hdfsRead(C.hdfsFS(fs), C.hdfsFile(file),
		unsafe.Pointer(&buf[0]), C.tSize(len(buf))))
}

// Write wraps around hdfsWrite. It returns the number of bytes written or a
// negative value on failure.
func (*Client) Write(fs unsafe.Pointer, file unsafe.Pointer, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}

	return int(C.hdfsWrite(C.hdfsFS(fs), C.hdfsFile(file),
		unsafe.Pointer(&buf[0]), C.tSize(len(buf))))
}

// Flush wraps around hdfsFlush.
func (*Client) Flush(fs unsafe.Pointer, file unsafe.Pointer) int {
	return int(C.hdfsFlush(C.hdfsFS(fs), C.hdfsFile(file)))
}

// FileSize wraps around hdfsGetPathInfo, returning the size of the object at
// the given path or a negative value when no information is available.
func (*Client) FileSize(fs unsafe.Pointer, path string) int64 {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	info := C.hdfsGetPathInfo(C.hdfsFS(fs), cPath)
	if info == nil {
		return -1
	}
	defer C.hdfsFreeFileInfo(info, 1)

	return int64(info.mSize)
}
