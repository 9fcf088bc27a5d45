package deliveryeventrepo

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/deliveryevent"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliveryEventRepository implements DeliveryEventRepository using GORM.
type GormDeliveryEventRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryEventRepository creates a new GORM delivery event repository.
func NewGormDeliveryEventRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryEventRepository {
	return &GormDeliveryEventRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a new delivery event.
func (r *GormDeliveryEventRepository) Add(ctx context.Context, event *deliveryevent.DeliveryEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(event.ID(), event)
	return nil
}

// Get retrieves a delivery event by ID.
func (r *GormDeliveryEventRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*deliveryevent.DeliveryEvent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryEventDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryEvent", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByParcel retrieves every delivery event recorded for a parcel,
// oldest first.
func (r *GormDeliveryEventRepository) GetAllByParcel(
	ctx context.Context, parcelID kernel.UUID,
) ([]*deliveryevent.DeliveryEvent, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryEventDTO
	if err := r.db.WithContext(ctx).
		Where("parcel_id = ?", parcelID.Bytes()).
		Order("recorded_at ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	events := make([]*deliveryevent.DeliveryEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}

// GetAllPhotoKeys returns the photo keys referenced by any recorded event.
func (r *GormDeliveryEventRepository) GetAllPhotoKeys(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	if err := r.db.WithContext(ctx).
		Model(&DeliveryEventDTO{}).
		Pluck("photo_key", &keys).Error; err != nil {
		return nil, err
	}

	return keys, nil
}
