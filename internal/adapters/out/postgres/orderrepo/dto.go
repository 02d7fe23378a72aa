// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The primary key is the creator-assigned order identifier; the status column
// stores the lowercase status name so the read side and operators can query
// it without a mapping table.
type OrderDTO struct {
	OrderID          string  `gorm:"primaryKey;size:128"`
	ClientName       string  `gorm:"not null"`
	PickupLocation   string  `gorm:"not null"`
	DeliveryLocation string  `gorm:"not null"`
	PackageInfo      string  `gorm:"not null"`
	Status           string  `gorm:"not null;index"`
	DriverID         *string `gorm:"size:32;index"`
	CreatedAt        time.Time
	BorrowedAt       *time.Time
	AssignedAt       *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var driverID *string
	if id := aggregate.Driver(); id != nil {
		raw := id.String()
		driverID = &raw
	}

	return OrderDTO{
		OrderID:          aggregate.ID().String(),
		ClientName:       aggregate.ClientName(),
		PickupLocation:   aggregate.PickupLocation(),
		DeliveryLocation: aggregate.DeliveryLocation(),
		PackageInfo:      aggregate.PackageInfo(),
		Status:           aggregate.Status().String(),
		DriverID:         driverID,
		CreatedAt:        aggregate.CreatedAt(),
		BorrowedAt:       aggregate.BorrowedAt(),
		AssignedAt:       aggregate.AssignedAt(),
	}
}

// toDomain converts a database row back into an order aggregate via
// RestoreOrder, which re-validates the status/driver coupling.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.DriverID
	if dto.DriverID != nil {
		dID, driverErr := kernel.DriverIDFromString(*dto.DriverID)
		if driverErr != nil {
			return nil, driverErr
		}

		driverID = &dID
	}

	return order.RestoreOrder(
		id,
		dto.ClientName,
		dto.PickupLocation,
		dto.DeliveryLocation,
		dto.PackageInfo,
		status,
		driverID,
		dto.CreatedAt,
		dto.BorrowedAt,
		dto.AssignedAt,
	)
}
