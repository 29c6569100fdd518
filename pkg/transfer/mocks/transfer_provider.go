// Package mocks provides testify-based mocks of the package's native transfer
// provider interface, for testing delegation without a linked native library.
package mocks

import (
	"unsafe"

	"github.com/stretchr/testify/mock"
)

// TransferProvider is a mock implementation of the native transfer provider
// consumed by the transfer package.
type TransferProvider struct {
	mock.Mock
}

func (m *TransferProvider) Copy(srcFS unsafe.Pointer, src string, dstFS unsafe.Pointer, dst string) int {
	args := m.Called(srcFS, src, dstFS, dst)

	return args.Int(0)
}

func (m *TransferProvider) Move(srcFS unsafe.Pointer, src string, dstFS unsafe.Pointer, dst string) int {
	args := m.Called(srcFS, src, dstFS, dst)

	return args.Int(0)
}
