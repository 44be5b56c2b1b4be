// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. This package implements the repository pattern for
// the order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Line items live in their own table; everything else,
// including the embedded customer, address and payment value objects,
// flattens into the orders row.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number       int64      `gorm:"uniqueIndex"`
	RestaurantID uuid.UUID  `gorm:"type:uuid;index"`
	CourierID    *uuid.UUID `gorm:"type:uuid;index"`
	Status       string     `gorm:"type:varchar(32);index"`

	Customer CustomerDTO `gorm:"embedded;embeddedPrefix:customer_"`
	Address  AddressDTO  `gorm:"embedded"`
	Payment  PaymentDTO  `gorm:"embedded"`

	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(12,2)"`
	ServiceFee  decimal.Decimal `gorm:"type:numeric(12,2)"`
	Discount    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2)"`

	Notes string

	PrepTimeMinutes    int
	PrepTimeWasChanged bool
	ExtraPrepMinutes   *int
	DelayMinutes       *int

	ConfirmedAt *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer contact fields.
type CustomerDTO struct {
	Name  string
	Phone string
	Email string `gorm:"index"`
}

// AddressDTO represents the embedded delivery address fields.
// Lat and Lon are both nil when no geolocation was captured.
type AddressDTO struct {
	Street      string
	HouseNumber string
	City        string
	PostalCode  string
	Lat         *float64
	Lon         *float64
}

// PaymentDTO represents the embedded payment fields. Cash and card columns
// are mutually exclusive depending on the method.
type PaymentDTO struct {
	PaymentMethod string          `gorm:"type:varchar(16)"`
	CashTendered  decimal.Decimal `gorm:"type:numeric(12,2)"`
	CashChange    decimal.Decimal `gorm:"type:numeric(12,2)"`
	CardBrand     string
	CardLast4     string `gorm:"type:varchar(4)"`
	CardHolder    string
}

// OrderItemDTO represents one line item row. Add-ons, customizations and
// removed ingredients are stored as JSON columns; they are opaque to SQL.
type OrderItemDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`

	ItemID    string
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity  int

	AddOns             []AddOnDTO        `gorm:"serializer:json"`
	Customizations     map[string]string `gorm:"serializer:json"`
	CustomizationPrice decimal.Decimal   `gorm:"type:numeric(12,2)"`
	RemovedIngredients []string          `gorm:"serializer:json"`
	Notes              string

	Total decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// AddOnDTO is one paid extra inside the JSON add-ons column.
type AddOnDTO struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Snapshot()

	var courierID *uuid.UUID
	if s.CourierID != nil {
		raw := s.CourierID.Bytes()
		courierID = &raw
	}

	items := make([]OrderItemDTO, 0, len(s.Items))
	for _, item := range s.Items {
		addOns := make([]AddOnDTO, 0, len(item.AddOns()))
		for _, a := range item.AddOns() {
			addOns = append(addOns, AddOnDTO{Name: a.Name, Price: a.Price})
		}

		items = append(items, OrderItemDTO{
			ID:                 uuid.New(),
			OrderID:            s.ID.Bytes(),
			ItemID:             item.ItemID(),
			Name:               item.Name(),
			UnitPrice:          item.UnitPrice(),
			Quantity:           item.Quantity(),
			AddOns:             addOns,
			Customizations:     item.Customizations(),
			CustomizationPrice: item.CustomizationPrice(),
			RemovedIngredients: item.RemovedIngredients(),
			Notes:              item.Notes(),
			Total:              item.Total(),
		})
	}

	var lat, lon *float64
	if loc := s.Address.Location(); loc != nil {
		latV, lonV := loc.Lat(), loc.Lon()
		lat, lon = &latV, &lonV
	}

	return OrderDTO{
		ID:           s.ID.Bytes(),
		Number:       s.Number,
		RestaurantID: s.RestaurantID.Bytes(),
		CourierID:    courierID,
		Status:       s.Status.String(),
		Customer: CustomerDTO{
			Name:  s.Customer.Name(),
			Phone: s.Customer.Phone(),
			Email: s.Customer.Email(),
		},
		Address: AddressDTO{
			Street:      s.Address.Street(),
			HouseNumber: s.Address.Number(),
			City:        s.Address.City(),
			PostalCode:  s.Address.PostalCode(),
			Lat:         lat,
			Lon:         lon,
		},
		Payment: PaymentDTO{
			PaymentMethod: string(s.Payment.Method()),
			CashTendered:  s.Payment.CashTendered(),
			CashChange:    s.Payment.CashChange(),
			CardBrand:     s.Payment.CardBrand(),
			CardLast4:     s.Payment.CardLast4(),
			CardHolder:    s.Payment.CardHolder(),
		},
		Subtotal:           s.Totals.Subtotal,
		DeliveryFee:        s.Totals.DeliveryFee,
		ServiceFee:         s.Totals.ServiceFee,
		Discount:           s.Totals.Discount,
		Total:              s.Totals.Total,
		Notes:              s.Notes,
		PrepTimeMinutes:    s.PrepTimeMinutes,
		PrepTimeWasChanged: s.PrepTimeWasChanged,
		ExtraPrepMinutes:   s.ExtraPrepMinutes,
		DelayMinutes:       s.DelayMinutes,
		ConfirmedAt:        s.ConfirmedAt,
		DeliveredAt:        s.DeliveredAt,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		Items:              items,
	}
}

// toDomain converts a database DTO back to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		converted, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &converted
	}

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Phone, dto.Customer.Email)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Address.Lat != nil && dto.Address.Lon != nil {
		point, locErr := kernel.NewGeoPoint(*dto.Address.Lat, *dto.Address.Lon)
		if locErr != nil {
			return nil, locErr
		}
		location = &point
	}

	address, err := order.NewAddress(
		dto.Address.Street, dto.Address.HouseNumber, dto.Address.City,
		dto.Address.PostalCode, location)
	if err != nil {
		return nil, err
	}

	payment, err := paymentToDomain(dto.Payment)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		addOns := make([]order.AddOn, 0, len(itemDTO.AddOns))
		for _, a := range itemDTO.AddOns {
			addOns = append(addOns, order.AddOn{Name: a.Name, Price: a.Price})
		}

		item, itemErr := order.NewLineItem(
			itemDTO.ItemID, itemDTO.Name, itemDTO.UnitPrice, itemDTO.Quantity,
			addOns, itemDTO.Customizations, itemDTO.CustomizationPrice,
			itemDTO.RemovedIngredients, itemDTO.Notes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:           id,
		Number:       dto.Number,
		RestaurantID: restaurantID,
		CourierID:    courierID,
		Status:       order.Status(dto.Status),
		Items:        items,
		Totals: order.Totals{
			Subtotal:    dto.Subtotal,
			DeliveryFee: dto.DeliveryFee,
			ServiceFee:  dto.ServiceFee,
			Discount:    dto.Discount,
			Total:       dto.Total,
		},
		Payment:            payment,
		Customer:           customer,
		Address:            address,
		Notes:              dto.Notes,
		ConfirmedAt:        dto.ConfirmedAt,
		DeliveredAt:        dto.DeliveredAt,
		PrepTimeMinutes:    dto.PrepTimeMinutes,
		PrepTimeWasChanged: dto.PrepTimeWasChanged,
		ExtraPrepMinutes:   dto.ExtraPrepMinutes,
		DelayMinutes:       dto.DelayMinutes,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}

func paymentToDomain(dto PaymentDTO) (order.Payment, error) {
	switch order.PaymentMethod(dto.PaymentMethod) {
	case order.PaymentCash:
		return order.NewCashPayment(dto.CashTendered, dto.CashChange)
	case order.PaymentCard:
		return order.NewCardPayment(dto.CardBrand, dto.CardLast4, dto.CardHolder)
	default:
		return order.Payment{}, nil
	}
}
