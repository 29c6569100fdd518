package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	cpVerify bool

	cpCmd = &cobra.Command{
		Use:   "cp <source> <destination>",
		Short: "Copy a file between filesystems",
		Long:  "Copies a file from the source to the destination path, leaving the source in place. Arguments are URIs (hdfs://host:port/path, file:///path) or bare paths resolving against the configured namenode.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := NewApp()
			defer app.Close()

			srcFS, src, dstFS, dst, err := app.transferArgs(args[0], args[1])
			if err != nil {
				return err
			}

			preflightLocalDest(srcFS, src, dstFS, dst)

			if err := app.transferHandler.Copy(srcFS, src, dstFS, dst); err != nil {
				return err
			}

			if cpVerify {
				if err := app.transferHandler.Verify(srcFS, src, dstFS, dst); err != nil {
					return err
				}
			}

			slog.Info("Copied.", "src", args[0], "dst", args[1])

			return nil
		},
	}
)

//nolint:gochecknoinits
func init() {
	cpCmd.Flags().BoolVar(&cpVerify, "verify", false, "verify destination content against the source after copying")
}
