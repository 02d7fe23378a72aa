// Package driverrepo provides data transfer objects and mapping functions for
// driver persistence.
package driverrepo

import (
	"time"

	"warehouse/internal/core/domain/model/driver"
	"warehouse/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver
// aggregates. Email is nullable with a unique index: drivers registered
// through the minimal path have no email, and NULLs never collide, while two
// signups with the same address do.
type DriverDTO struct {
	DriverID      string  `gorm:"primaryKey;size:32"`
	Name          string  `gorm:"not null"`
	Email         *string `gorm:"uniqueIndex;size:256"`
	Phone         *string `gorm:"size:64"`
	LicenseNumber *string `gorm:"size:64"`
	Available     bool    `gorm:"not null;index"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		DriverID:      aggregate.ID().String(),
		Name:          aggregate.Name(),
		Email:         optional(aggregate.Email()),
		Phone:         optional(aggregate.Phone()),
		LicenseNumber: optional(aggregate.LicenseNumber()),
		Available:     aggregate.IsAvailable(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database row back into a driver aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.DriverIDFromString(dto.DriverID)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		deref(dto.Email),
		deref(dto.Phone),
		deref(dto.LicenseNumber),
		dto.Available,
		dto.CreatedAt,
	)
}

// optional maps an empty string to NULL so the unique email index ignores
// drivers without contact details.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
