package transfer_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/veraek/hdfsbridge/pkg/hdfs"
	hdfsmocks "github.com/veraek/hdfsbridge/pkg/hdfs/mocks"
	"github.com/veraek/hdfsbridge/pkg/transfer"
	"github.com/veraek/hdfsbridge/pkg/transfer/mocks"
)

// newTestFS connects a handle against a mocked native client, for passing
// into the transfer layer under test.
func newTestFS(t *testing.T) *hdfs.FS {
	t.Helper()

	mockClient := new(hdfsmocks.ClientProvider)
	mockClient.On("Connect", "", uint16(0)).Return(unsafe.Pointer(new(int)))

	fs, err := hdfs.NewFS(hdfs.Local(), mockClient)
	require.NoError(t, err)

	return fs
}

// TestCopy_Success tests that a zero native status maps to success and the
// native call receives the raw handles and paths unchanged.
func TestCopy_Success(t *testing.T) {
	t.Parallel()
	mockNative := new(mocks.TransferProvider)

	srcFS := newTestFS(t)
	dstFS := newTestFS(t)

	mockNative.On("Copy", srcFS.Raw(), "/src/file", dstFS.Raw(), "/dst/file").Return(0)

	handler := transfer.NewHandler(mockNative)

	err := handler.Copy(srcFS, "/src/file", dstFS, "/dst/file")

	require.NoError(t, err)
	mockNative.AssertExpectations(t)
}

// TestCopy_NativeFailure tests that a non-zero native status surfaces as the
// generic operation failure, never as success.
func TestCopy_NativeFailure(t *testing.T) {
	t.Parallel()
	mockNative := new(mocks.TransferProvider)

	srcFS := newTestFS(t)
	dstFS := newTestFS(t)

	mockNative.On("Copy", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(-1)

	handler := transfer.NewHandler(mockNative)

	err := handler.Copy(srcFS, "/src/file", dstFS, "/dst/file")

	require.ErrorIs(t, err, transfer.ErrOperationFailed)
	mockNative.AssertExpectations(t)
}

// TestCopy_InvalidSourcePath tests that an embedded null byte in the source
// path fails locally, without the native call being attempted.
func TestCopy_InvalidSourcePath(t *testing.T) {
	t.Parallel()
	mockNative := new(mocks.TransferProvider)

	handler := transfer.NewHandler(mockNative)

	err := handler.Copy(newTestFS(t), "/src/\x00file", newTestFS(t), "/dst/file")

	require.ErrorIs(t, err, transfer.ErrInvalidPath)
	mockNative.AssertNotCalled(t, "Copy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestCopy_InvalidDestinationPath tests that an embedded null byte in the
// destination path fails locally, without the native call being attempted.
func TestCopy_InvalidDestinationPath(t *testing.T) {
	t.Parallel()
	mockNative := new(mocks.TransferProvider)

	handler := transfer.NewHandler(mockNative)

	err := handler.Copy(newTestFS(t), "/src/file", newTestFS(t), "/dst/\x00file")

	require.ErrorIs(t, err, transfer.ErrInvalidPath)
	mockNative.AssertNotCalled(t, "Copy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestMove_Success tests that a zero native status maps to success and the
// native call receives the raw handles and paths unchanged.
func TestMove_Success(t *testing.T) {
	t.Parallel()
	mockNative := new(mocks.TransferProvider)

	srcFS := newTestFS(t)
	dstFS := newTestFS(t)

	mockNative.On("Move", srcFS.Raw(), "/src/file", dstFS.Raw(), "/dst/file").Return(0)

	handler := transfer.NewHandler(mockNative)

	err := handler.Move(srcFS, "/src/file", dstFS, "/dst/file")

	require.NoError(t, err)
	mockNative.AssertExpectations(t)
}

// TestMove_NativeFailure tests that a non-zero native status surfaces as the
// generic operation failure, never as success.
func TestMove_NativeFailure(t *testing.T) {
	t.Parallel()
	mockNative := new(mocks.TransferProvider)

	mockNative.On("Move", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(1)

	handler := transfer.NewHandler(mockNative)

	err := handler.Move(newTestFS(t), "/src/file", newTestFS(t), "/dst/file")

	require.ErrorIs(t, err, transfer.ErrOperationFailed)
	mockNative.AssertExpectations(t)
}

// TestMove_InvalidPath tests that an embedded null byte fails locally,
// without the native call being attempted.
func TestMove_InvalidPath(t *testing.T) {
	t.Parallel()
	mockNative := new(mocks.TransferProvider)

	handler := transfer.NewHandler(mockNative)

	err := handler.Move(newTestFS(t), "/src/\x00file", newTestFS(t), "/dst/file")

	require.ErrorIs(t, err, transfer.ErrInvalidPath)
	mockNative.AssertNotCalled(t, "Move", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
