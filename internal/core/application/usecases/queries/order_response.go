package queries

import (
	"time"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderResponse is the read-side representation of an order. It mirrors
// the persisted row rather than the domain aggregate; monetary fields come
// back exactly as stored.
type OrderResponse struct {
	ID           kernel.UUID
	Number       int64
	RestaurantID kernel.UUID
	CourierID    *kernel.UUID
	Status       string

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	Street     string
	City       string
	PostalCode string

	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	ServiceFee  decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal

	PaymentMethod string
	Notes         string

	PrepTimeMinutes    int
	PrepTimeWasChanged bool
	ExtraPrepMinutes   *int
	DelayMinutes       *int

	ConfirmedAt *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []OrderItemResponse
}

// OrderItemResponse is one priced line item of an order.
type OrderItemResponse struct {
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Total     decimal.Decimal
}

// orderRow maps the orders table for the read side. The write-side DTO
// lives in the postgres adapter; this row only carries what responses need.
type orderRow struct {
	ID           uuid.UUID  `gorm:"column:id"`
	Number       int64      `gorm:"column:number"`
	RestaurantID uuid.UUID  `gorm:"column:restaurant_id"`
	CourierID    *uuid.UUID `gorm:"column:courier_id"`
	Status       string     `gorm:"column:status"`

	CustomerName  string `gorm:"column:customer_name"`
	CustomerPhone string `gorm:"column:customer_phone"`
	CustomerEmail string `gorm:"column:customer_email"`

	Street     string `gorm:"column:street"`
	City       string `gorm:"column:city"`
	PostalCode string `gorm:"column:postal_code"`

	Subtotal    decimal.Decimal `gorm:"column:subtotal"`
	DeliveryFee decimal.Decimal `gorm:"column:delivery_fee"`
	ServiceFee  decimal.Decimal `gorm:"column:service_fee"`
	Discount    decimal.Decimal `gorm:"column:discount"`
	Total       decimal.Decimal `gorm:"column:total"`

	PaymentMethod string `gorm:"column:payment_method"`
	Notes         string `gorm:"column:notes"`

	PrepTimeMinutes    int  `gorm:"column:prep_time_minutes"`
	PrepTimeWasChanged bool `gorm:"column:prep_time_was_changed"`
	ExtraPrepMinutes   *int `gorm:"column:extra_prep_minutes"`
	DelayMinutes       *int `gorm:"column:delay_minutes"`

	ConfirmedAt *time.Time `gorm:"column:confirmed_at"`
	DeliveredAt *time.Time `gorm:"column:delivered_at"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at"`
}

func (orderRow) TableName() string {
	return "orders"
}

type orderItemRow struct {
	OrderID   uuid.UUID       `gorm:"column:order_id"`
	ItemID    string          `gorm:"column:item_id"`
	Name      string          `gorm:"column:name"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price"`
	Quantity  int             `gorm:"column:quantity"`
	Total     decimal.Decimal `gorm:"column:total"`
}

func (orderItemRow) TableName() string {
	return "order_items"
}

func (r orderRow) toResponse() (OrderResponse, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(r.RestaurantID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	var courierID *kernel.UUID
	if r.CourierID != nil {
		converted, convErr := kernel.UUIDFromBytes(r.CourierID[:])
		if convErr != nil {
			return OrderResponse{}, convErr
		}
		courierID = &converted
	}

	return OrderResponse{
		ID:                 id,
		Number:             r.Number,
		RestaurantID:       restaurantID,
		CourierID:          courierID,
		Status:             r.Status,
		CustomerName:       r.CustomerName,
		CustomerPhone:      r.CustomerPhone,
		CustomerEmail:      r.CustomerEmail,
		Street:             r.Street,
		City:               r.City,
		PostalCode:         r.PostalCode,
		Subtotal:           r.Subtotal,
		DeliveryFee:        r.DeliveryFee,
		ServiceFee:         r.ServiceFee,
		Discount:           r.Discount,
		Total:              r.Total,
		PaymentMethod:      r.PaymentMethod,
		Notes:              r.Notes,
		PrepTimeMinutes:    r.PrepTimeMinutes,
		PrepTimeWasChanged: r.PrepTimeWasChanged,
		ExtraPrepMinutes:   r.ExtraPrepMinutes,
		DelayMinutes:       r.DelayMinutes,
		ConfirmedAt:        r.ConfirmedAt,
		DeliveredAt:        r.DeliveredAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}, nil
}
