package deliveryrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/delivery"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery record repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Upsert inserts the record or replaces an existing one for the same order.
// Assignment after a return reuses the order's slot rather than failing on
// the leftover key.
func (r *GormDeliveryRepository) Upsert(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.OrderID, aggregate)
	return nil
}

// Get retrieves the delivery record for an order.
func (r *GormDeliveryRepository) Get(ctx context.Context, orderID kernel.OrderID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order_id", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the delivery record for an order.
// Deleting an absent record is a no-op: a return from "borrowed" has no
// record to clear.
func (r *GormDeliveryRepository) Delete(ctx context.Context, orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "order_id = ?", orderID.String()).Error
}
