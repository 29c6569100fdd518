// Package mocks provides testify-based mocks of the package's native client
// provider interface, for testing delegation without a linked native library.
package mocks

import (
	"unsafe"

	"github.com/stretchr/testify/mock"
)

// ClientProvider is a mock implementation of the native client provider
// consumed by the hdfs package.
type ClientProvider struct {
	mock.Mock
}

func (m *ClientProvider) Connect(host string, port uint16) unsafe.Pointer {
	args := m.Called(host, port)

	if ptr := args.Get(0); ptr != nil {
		return ptr.(unsafe.Pointer)
	}

	return nil
}

func (m *ClientProvider) ConnectAsUser(host string, port uint16, user string) unsafe.Pointer {
	args := m.Called(host, port, user)

	if ptr := args.Get(0); ptr != nil {
		return ptr.(unsafe.Pointer)
	}

	return nil
}

func (m *ClientProvider) Disconnect(fs unsafe.Pointer) int {
	args := m.Called(fs)

	return args.Int(0)
}

func (m *ClientProvider) Exists(fs unsafe.Pointer, path string) int {
	args := m.Called(fs, path)

	return args.Int(0)
}

func (m *ClientProvider) Delete(fs unsafe.Pointer, path string, recursive bool) int {
	args := m.Called(fs, path, recursive)

	return args.Int(0)
}

func (m *ClientProvider) CreateDirectory(fs unsafe.Pointer, path string) int {
	args := m.Called(fs, path)

	return args.Int(0)
}

func (m *ClientProvider) Rename(fs unsafe.Pointer, oldPath string, newPath string) int {
	args := m.Called(fs, oldPath, newPath)

	return args.Int(0)
}

func (m *ClientProvider) OpenFile(fs unsafe.Pointer, path string, flags int, bufferSize int, replication int16, blockSize int32) unsafe.Pointer {
	args := m.Called(fs, path, flags, bufferSize, replication, blockSize)

	if ptr := args.Get(0); ptr != nil {
		return ptr.(unsafe.Pointer)
	}

	return nil
}

func (m *ClientProvider) CloseFile(fs unsafe.Pointer, file unsafe.Pointer) int {
	args := m.Called(fs, file)

	return args.Int(0)
}

func (m *ClientProvider) Read(fs unsafe.Pointer, file unsafe.Pointer, buf []byte) int {
	args := m.Called(fs, file, buf)

	return args.Int(0)
}

func (m *ClientProvider) Write(fs unsafe.Pointer, file unsafe.Pointer, buf []byte) int {
	args := m.Called(fs, file, buf)

	return args.Int(0)
}

func (m *ClientProvider) Flush(fs unsafe.Pointer, file unsafe.Pointer) int {
	args := m.Called(fs, file)

	return args.Int(0)
}

func (m *ClientProvider) FileSize(fs unsafe.Pointer, path string) int64 {
	args := m.Called(fs, path)

	return args.Get(0).(int64)
}
