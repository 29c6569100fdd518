package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	envFile      string
	namenodeHost string
	namenodePort uint16
	namenodeUser string

	rootCmd = &cobra.Command{
		Use:           "hdfsbridge",
		Short:         "Copy and move files across distributed filesystems",
		Long:          "hdfsbridge transfers files between filesystems through the native distributed-filesystem client library.",
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

//nolint:gochecknoinits
func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "path to an environment configuration file")
	rootCmd.PersistentFlags().StringVar(&namenodeHost, "namenode", "", "default namenode host for bare paths")
	rootCmd.PersistentFlags().Uint16Var(&namenodePort, "port", 0, "default namenode port for bare paths")
	rootCmd.PersistentFlags().StringVar(&namenodeUser, "user", "", "user to connect to the namenode as")

	rootCmd.AddCommand(cpCmd)
	rootCmd.AddCommand(mvCmd)
	rootCmd.AddCommand(runCmd)
}

func version() string {
	if Version == "" {
		return "dev"
	}

	return Version
}

func setupLogging(w io.Writer) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupLogging(os.Stdout)
	setupSignalHandlers(cancel)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Error("Failure during execution.", "err", err)
		ExitCode = 1
	}
}
