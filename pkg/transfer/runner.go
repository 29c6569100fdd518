package transfer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/veraek/hdfsbridge/internal/queue"
	"github.com/veraek/hdfsbridge/pkg/hdfs"
)

// Op names a transfer operation kind.
type Op string

const (
	// OpCopy duplicates data at the destination, leaving the source in place.
	OpCopy Op = "copy"

	// OpMove relocates data to the destination, removing it from the source.
	OpMove Op = "move"
)

// Request is one queued transfer operation between two filesystem handles.
type Request struct {
	ID      string
	Op      Op
	SrcFS   *hdfs.FS
	SrcPath string
	DstFS   *hdfs.FS
	DstPath string
	Verify  bool
}

// ProcessQueue sequentially drains a queue of transfer [Request] items,
// recording per-item outcomes on the queue. A failed request is set as
// skipped and does not stop the remaining requests; an error is only returned
// on context cancellation.
func (h *Handler) ProcessQueue(ctx context.Context, requests *queue.Queue[*Request]) error {
	err := requests.DequeueAndProcess(ctx, func(request *Request) int {
		if err := h.processRequest(request); err != nil {
			slog.Warn("Skipped job: failure during processing",
				"err", err,
				"job", request.ID,
				"src", request.SrcPath,
				"dst", request.DstPath,
			)

			return queue.DecisionSkipped
		}

		slog.Info("Processed:",
			"op", request.Op,
			"job", request.ID,
			"src", request.SrcPath,
			"dst", request.DstPath,
		)

		return queue.DecisionSuccess
	})
	if err != nil {
		return fmt.Errorf("(transfer-queue) %w", err)
	}

	return nil
}

func (h *Handler) processRequest(request *Request) error {
	switch request.Op {
	case OpCopy:
		if err := h.Copy(request.SrcFS, request.SrcPath, request.DstFS, request.DstPath); err != nil {
			return err
		}

		if request.Verify {
			if err := h.Verify(request.SrcFS, request.SrcPath, request.DstFS, request.DstPath); err != nil {
				return err
			}
		}

		return nil

	case OpMove:
		return h.Move(request.SrcFS, request.SrcPath, request.DstFS, request.DstPath)

	default:
		return fmt.Errorf("(transfer) unknown operation %q: %w", request.Op, ErrOperationFailed)
	}
}
