package activities

import (
	"context"

	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/models"
)

// captureStockSnapshots writes the end-of-day stock level of every
// product. The per-branch capture skips branches already snapshotted
// today, so the two qualifying minutes of the window cannot double
// write.
func (s *Scheduler) captureStockSnapshots(ctx context.Context, tick Tick) error {
	branches, err := s.listActiveBranches(ctx)
	if err != nil {
		return err
	}

	var total int64
	for i := range branches {
		branch := &branches[i]
		written, err := models.CaptureBranchStock(ctx, branch.ID, tick.At)
		if err != nil {
			config.LogError(s.Logger, "snapshot.go", "captureStockSnapshots", "CaptureBranchStock", branch.ID, err)
			continue
		}
		total += written
	}

	s.Logger.WithField("snapshots", total).Info("stock snapshots captured")
	return nil
}
