package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var mvCmd = &cobra.Command{
	Use:   "mv <source> <destination>",
	Short: "Move a file between filesystems",
	Long:  "Moves a file from the source to the destination path; after success the file no longer exists at the source. Arguments are URIs (hdfs://host:port/path, file:///path) or bare paths resolving against the configured namenode.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := NewApp()
		defer app.Close()

		srcFS, src, dstFS, dst, err := app.transferArgs(args[0], args[1])
		if err != nil {
			return err
		}

		preflightLocalDest(srcFS, src, dstFS, dst)

		if err := app.transferHandler.Move(srcFS, src, dstFS, dst); err != nil {
			return err
		}

		slog.Info("Moved.", "src", args[0], "dst", args[1])

		return nil
	},
}
