package transfer

import (
	"fmt"
	"io"

	"github.com/veraek/hdfsbridge/pkg/hdfs"
	"github.com/zeebo/blake3"
)

// Verify reads back the content at the source and destination paths through
// the handle layer and compares their checksums. It is intended as an
// optional post-copy check; the native transfer itself reports only pass/fail
// and performs no content verification of its own.
func (h *Handler) Verify(srcFS *hdfs.FS, src string, dstFS *hdfs.FS, dst string) error {
	srcChecksum, err := checksumPath(srcFS, src)
	if err != nil {
		return fmt.Errorf("(transfer) verify source: %w", err)
	}

	dstChecksum, err := checksumPath(dstFS, dst)
	if err != nil {
		return fmt.Errorf("(transfer) verify destination: %w", err)
	}

	if srcChecksum != dstChecksum {
		return fmt.Errorf("(transfer) %s (src) != %s (dst): %w", srcChecksum, dstChecksum, ErrChecksumMismatch)
	}

	return nil
}

func checksumPath(fs *hdfs.FS, path string) (string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := blake3.New()

	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}
