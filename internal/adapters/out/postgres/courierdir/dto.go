// Package courierdir implements the courier directory over the couriers
// table. The fulfillment core only reads couriers; roster management
// happens in a separate system that owns the writes.
package courierdir

import (
	"storefront/internal/core/domain/model/courier"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure of a courier roster entry.
type CourierDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Status          string `gorm:"type:varchar(16);index"`
	Available       bool   `gorm:"index"`
	Lat             *float64
	Lon             *float64
	Rating          float64
	TotalDeliveries int
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// toDomain converts a database DTO to a courier read model.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Lat != nil && dto.Lon != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lon)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	return courier.NewCourier(
		id, dto.Name, courier.Status(dto.Status), dto.Available,
		location, dto.Rating, dto.TotalDeliveries)
}
