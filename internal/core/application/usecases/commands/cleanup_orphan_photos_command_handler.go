package commands

import (
	"context"
	"time"

	"parceltrack/internal/core/ports"
)

// CleanupOrphanPhotosCommandHandler removes stored photos that no delivery
// event references. Only photos older than the retention window are touched,
// so uploads belonging to in-flight deliveries are never swept.
type CleanupOrphanPhotosCommandHandler struct {
	uowFactory DeliveryUoWFactory
	mediaStore ports.MediaStore
	retention  time.Duration
}

// NewCleanupOrphanPhotosCommandHandler creates a handler for orphan photo
// cleanup. retention is the minimum age a stored photo must reach before it
// is eligible for removal.
func NewCleanupOrphanPhotosCommandHandler(
	uowFactory DeliveryUoWFactory,
	mediaStore ports.MediaStore,
	retention time.Duration,
) CleanupOrphanPhotosCommandHandler {
	return CleanupOrphanPhotosCommandHandler{
		uowFactory: uowFactory,
		mediaStore: mediaStore,
		retention:  retention,
	}
}

// Handle removes every stored photo older than the retention window whose
// key is not referenced by a delivery event. Returns the number of photos
// removed. The operation only reads from the database, so no transaction is
// opened.
func (h *CleanupOrphanPhotosCommandHandler) Handle(
	ctx context.Context, cmd CleanupOrphanPhotosCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()

	keys, err := uow.DeliveryEventRepository().GetAllPhotoKeys(ctx)
	if err != nil {
		return 0, err
	}

	referenced := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		referenced[key] = struct{}{}
	}

	cutoff := time.Now().Add(-h.retention)
	stored, err := h.mediaStore.ListOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, key := range stored {
		if _, ok := referenced[key]; ok {
			continue
		}

		if err = h.mediaStore.Remove(ctx, key); err != nil {
			return removed, err
		}

		removed++
	}

	return removed, nil
}
