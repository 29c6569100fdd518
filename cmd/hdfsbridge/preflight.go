package main

import (
	"log/slog"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/veraek/hdfsbridge/pkg/hdfs"
	"golang.org/x/sys/unix"
)

// preflightLocalDest checks free space for transfers onto the local
// filesystem, before the blocking native call is issued. The check is advisory
// only: size information may be unavailable for either side, and the native
// call remains the sole authority on whether the transfer succeeds.
func preflightLocalDest(srcFS *hdfs.FS, src string, dstFS *hdfs.FS, dst string) {
	if dstFS.Endpoint().Scheme != hdfs.SchemeFile {
		return
	}

	size, err := srcFS.Size(src)
	if err != nil {
		slog.Debug("Skipping free-space preflight: no source size available.", "src", src, "err", err)

		return
	}

	var stat unix.Statfs_t
	if err := unix.Statfs(filepath.Dir(dst), &stat); err != nil {
		slog.Debug("Skipping free-space preflight: statfs failed.", "dst", dst, "err", err)

		return
	}

	freeSpace := int64(stat.Bavail) * stat.Bsize //nolint:gosec
	if freeSpace < size {
		slog.Warn("Destination may not have enough free space.",
			"dst", dst,
			"need", humanize.Bytes(uint64(size)),
			"free", humanize.Bytes(uint64(max(freeSpace, 0))),
		)
	}
}
