// Package transfer implements cross-filesystem copy and move operations by
// delegating to the native transfer primitives (hdfsCopy, hdfsMove). The
// package performs none of the actual I/O: it validates and marshals the path
// arguments, issues a single blocking native call per operation and maps the
// pass/fail status onto an error. There are no retries, timeouts or
// partial-failure recovery at this layer.
package transfer

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/veraek/hdfsbridge/pkg/hdfs"
)

type transferProvider interface {
	Copy(srcFS unsafe.Pointer, src string, dstFS unsafe.Pointer, dst string) int
	Move(srcFS unsafe.Pointer, src string, dstFS unsafe.Pointer, dst string) int
}

// Handler is the principal implementation of the cross-filesystem transfer
// utility.
type Handler struct {
	NativeOps transferProvider
}

// NewHandler returns a pointer to a new transfer [Handler] delegating to the
// given native provider.
func NewHandler(nativeOps transferProvider) *Handler {
	return &Handler{
		NativeOps: nativeOps,
	}
}

// Copy duplicates the data at a source path onto a destination path, possibly
// across filesystems. The source is left unchanged. The operation is one
// atomic request/response against the native boundary; on failure no
// partial-completion state is reported back.
func (h *Handler) Copy(srcFS *hdfs.FS, src string, dstFS *hdfs.FS, dst string) error {
	if err := validatePaths(src, dst); err != nil {
		return err
	}

	if rc := h.NativeOps.Copy(srcFS.Raw(), src, dstFS.Raw(), dst); rc != 0 {
		return fmt.Errorf("(transfer) copy %q -> %q: %w", src, dst, ErrOperationFailed)
	}

	return nil
}

// Move relocates the data at a source path onto a destination path, possibly
// across filesystems. After success the data no longer exists at the source.
// The operation is one atomic request/response against the native boundary;
// on failure no partial-completion state is reported back.
func (h *Handler) Move(srcFS *hdfs.FS, src string, dstFS *hdfs.FS, dst string) error {
	if err := validatePaths(src, dst); err != nil {
		return err
	}

	if rc := h.NativeOps.Move(srcFS.Raw(), src, dstFS.Raw(), dst); rc != 0 {
		return fmt.Errorf("(transfer) move %q -> %q: %w", src, dst, ErrOperationFailed)
	}

	return nil
}

// validatePaths fails fast on paths that cannot be represented as
// null-terminated byte sequences, before any native call is attempted.
func validatePaths(paths ...string) error {
	for _, path := range paths {
		if strings.IndexByte(path, 0) >= 0 {
			return fmt.Errorf("(transfer) %q: %w", strings.ReplaceAll(path, "\x00", `\x00`), ErrInvalidPath)
		}
	}

	return nil
}
