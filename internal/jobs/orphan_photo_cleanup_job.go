package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/metrics"
)

// OrphanPhotoCleanupJob manages the scheduled removal of delivery photos
// that no delivery event references. Runs hourly.
type OrphanPhotoCleanupJob struct {
	handler commands.CleanupOrphanPhotosCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrphanPhotoCleanupJob creates a new job for sweeping orphaned photos.
// Uses CleanupOrphanPhotosCommandHandler to perform the actual cleanup.
func NewOrphanPhotoCleanupJob(
	handler commands.CleanupOrphanPhotosCommandHandler, logger *slog.Logger,
) *OrphanPhotoCleanupJob {
	return &OrphanPhotoCleanupJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "orphan_photo_cleanup_job"),
	}
}

// Start begins the cleanup job, running at the top of every hour.
func (j *OrphanPhotoCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCleanupOrphanPhotosCommand()

		removed, err := j.handler.Handle(ctx, cmd)
		if removed > 0 {
			metrics.OrphanPhotosRemovedTotal.Add(float64(removed))
			j.logger.InfoContext(ctx, "Removed orphaned delivery photos", "count", removed)
		}

		if err != nil {
			j.logger.ErrorContext(ctx, "Orphan photo cleanup failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orphan photo cleanup job started (running hourly)")
	return nil
}

// Stop stops the cleanup job.
func (j *OrphanPhotoCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Orphan photo cleanup job stopped")
}
