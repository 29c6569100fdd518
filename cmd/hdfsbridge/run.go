package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
	"github.com/veraek/hdfsbridge/internal/jobfile"
	"github.com/veraek/hdfsbridge/internal/queue"
	"github.com/veraek/hdfsbridge/internal/ui"
	"github.com/veraek/hdfsbridge/pkg/transfer"
)

// ErrBatchLocked is an error that occurs when another batch run already holds
// the lock file.
var ErrBatchLocked = errors.New("another batch run is already active")

//nolint:gochecknoglobals
var (
	runUIEnabled bool
	runLockFile  string

	runCmd = &cobra.Command{
		Use:   "run <jobfile>",
		Short: "Run a batch of transfers from a YAML job file",
		Long:  "Reads a YAML job file describing copy and move operations and processes them sequentially, with optional progress UI.",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
)

//nolint:gochecknoinits
func init() {
	runCmd.Flags().BoolVar(&runUIEnabled, "ui", true, "enable the UI")
	runCmd.Flags().StringVar(&runLockFile, "lock-file", filepath.Join(os.TempDir(), "hdfsbridge.lock"), "lock file guarding against concurrent batch runs")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	lock := flock.New(runLockFile)

	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock file %q: %w", runLockFile, err)
	}
	if !locked {
		return fmt.Errorf("%q: %w", runLockFile, ErrBatchLocked)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	app := NewApp()
	defer app.Close()

	jobs, err := jobfile.Load(args[0])
	if err != nil {
		return err
	}

	requests := queue.NewQueue[*transfer.Request]()

	for _, job := range jobs {
		srcFS, src, dstFS, dst, err := app.transferArgs(job.Src, job.Dst)
		if err != nil {
			return fmt.Errorf("job %s: %w", job.ID, err)
		}

		preflightLocalDest(srcFS, src, dstFS, dst)

		if size, err := srcFS.Size(src); err == nil {
			slog.Info("Queued job:",
				"op", job.Op,
				"job", job.ID,
				"src", job.Src,
				"dst", job.Dst,
				"size", humanize.Bytes(uint64(size)), //nolint:gosec
			)
		} else {
			slog.Info("Queued job:", "op", job.Op, "job", job.ID, "src", job.Src, "dst", job.Dst)
		}

		requests.Enqueue(&transfer.Request{
			ID:      job.ID,
			Op:      transfer.Op(job.Op),
			SrcFS:   srcFS,
			SrcPath: src,
			DstFS:   dstFS,
			DstPath: dst,
			Verify:  job.Verify || app.settings.Verify,
		})
	}

	var uiHandler *ui.Handler
	if runUIEnabled {
		uiHandler = ui.NewHandler(ctx, cancel, requests)
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go startUI(&wg, uiHandler)

	wg.Add(1)
	go startProcessing(ctx, &wg, app, uiHandler, requests)

	wg.Wait()

	if skipped := requests.GetSkipped(); len(skipped) > 0 {
		return fmt.Errorf("%d of %d jobs failed: %w", len(skipped), len(jobs), transfer.ErrOperationFailed)
	}

	return nil
}

// startUI runs the user interface, if one was requested. Cancellation reaches
// the program through its own context, wired in at construction.
func startUI(wg *sync.WaitGroup, uiHandler *ui.Handler) {
	defer wg.Done()

	if uiHandler == nil {
		return
	}

	defer setupLogging(os.Stdout)
	setupLogging(uiHandler.LogWriter)

	if err := uiHandler.Launch(); err != nil {
		slog.Error("UI failure: falling back to terminal.", "err", err)
	}
}

func startProcessing(ctx context.Context, wg *sync.WaitGroup, app *App, uiHandler *ui.Handler, requests *queue.Queue[*transfer.Request]) {
	defer wg.Done()

	if uiHandler != nil {
		slog.Info("Waiting for UI...")
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if uiHandler.Ready.Load() || uiHandler.Failed.Load() {
				break
			}
		}
		defer uiHandler.Quit()
	}

	if err := app.transferHandler.ProcessQueue(ctx, requests); err != nil {
		slog.Error("Batch processing interrupted.", "err", err)
	}
}
