// Package restaurantdir implements the restaurant directory over the
// restaurants table. The fulfillment core reads restaurant defaults and
// the pickup location; catalog management owns the writes.
package restaurantdir

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/restaurant"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RestaurantDTO represents the database structure of a restaurant catalog
// entry, reduced to what fulfillment needs.
type RestaurantDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string
	Lat                 *float64
	Lon                 *float64
	DefaultPrepTimeMins int
	DeliveryFee         decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// GormRestaurantDirectory implements ports.RestaurantDirectory using GORM.
type GormRestaurantDirectory struct {
	db *gorm.DB
}

// NewGormRestaurantDirectory creates a new GORM restaurant directory.
func NewGormRestaurantDirectory(db *gorm.DB) *GormRestaurantDirectory {
	return &GormRestaurantDirectory{db: db}
}

// Get retrieves a restaurant by ID.
func (d *GormRestaurantDirectory) Get(
	ctx context.Context, id kernel.UUID,
) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	err := d.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("restaurantId", id.String())
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
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

	return restaurant.NewRestaurant(
		id, dto.Name, location, dto.DefaultPrepTimeMins, dto.DeliveryFee)
}
