// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery record persistence. Delivery records are derived state keyed
// by order: one appears on assignment, disappears on return, and flips to
// "delivered" on delivery.
package deliveryrepo

import (
	"warehouse/internal/core/domain/model/delivery"
	"warehouse/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting delivery
// records. The order identifier is the primary key: an order has at most one
// delivery record.
type DeliveryDTO struct {
	OrderID        string `gorm:"primaryKey;size:128"`
	DeliveryStatus string `gorm:"not null"`
	Address        string `gorm:"not null"`
	DriverID       string `gorm:"not null;size:32"`
}

// TableName specifies the database table name for delivery records.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery record to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		OrderID:        aggregate.OrderID().String(),
		DeliveryStatus: aggregate.Status(),
		Address:        aggregate.Address(),
		DriverID:       aggregate.DriverID().String(),
	}
}

// toDomain converts a database row back into a delivery record.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	orderID, err := kernel.NewOrderID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.DriverIDFromString(dto.DriverID)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(orderID, dto.DeliveryStatus, dto.Address, driverID)
}
