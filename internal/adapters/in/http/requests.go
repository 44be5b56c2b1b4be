package http

import (
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/services"

	"github.com/samber/lo"
)

// Request payloads are deliberately loose about monetary fields: clients
// send prices as numbers or strings under historical aliases, and the
// pricing engine resolves them. Amounts therefore come in as `any`.

type createOrderRequest struct {
	RestaurantID string          `json:"restaurantId"`
	Customer     customerPayload `json:"customer"`
	Address      addressPayload  `json:"address"`
	Items        []itemPayload   `json:"items"`
	Payment      paymentPayload  `json:"payment"`
	DeliveryFee  any             `json:"deliveryFee"`
	ServiceFee   any             `json:"serviceFee"`
	Discount     any             `json:"discount"`
	PrepTime     int             `json:"preparationTimeMinutes"`
	Notes        string          `json:"notes"`
}

type customerPayload struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type addressPayload struct {
	Street     string   `json:"street"`
	Number     string   `json:"number"`
	City       string   `json:"city"`
	PostalCode string   `json:"postalCode"`
	Lat        *float64 `json:"lat"`
	Lon        *float64 `json:"lon"`
}

type itemPayload struct {
	ItemID string `json:"itemId"`
	Name   string `json:"name"`

	UnitPrice any `json:"unitPrice"`
	Price     any `json:"price"`
	BasePrice any `json:"basePrice"`
	ItemPrice any `json:"itemPrice"`

	Quantity           any               `json:"quantity"`
	AddOns             []addOnPayload    `json:"addOns"`
	Customizations     map[string]string `json:"customizations"`
	CustomizationPrice any               `json:"customizationPrice"`
	RemovedIngredients []string          `json:"removedIngredients"`
	Notes              string            `json:"notes"`
}

type addOnPayload struct {
	Name  string `json:"name"`
	Price any    `json:"price"`
}

type paymentPayload struct {
	Method     string `json:"method"`
	Tendered   any    `json:"tendered"`
	Change     any    `json:"change"`
	CardBrand  string `json:"cardBrand"`
	CardLast4  string `json:"cardLast4"`
	CardHolder string `json:"cardHolder"`
}

type changeStatusRequest struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

type changePrepTimeRequest struct {
	Minutes      int `json:"minutes"`
	ExtraMinutes int `json:"extraMinutes"`
}

// updateOrderRequest serves PUT on an order. A non-nil Items field selects
// the full update path with re-pricing; otherwise only the present simple
// fields are amended and the stored totals stay untouched.
type updateOrderRequest struct {
	Items       []itemPayload `json:"items"`
	DeliveryFee any           `json:"deliveryFee"`
	ServiceFee  any           `json:"serviceFee"`
	Discount    any           `json:"discount"`
	CourierID   *string       `json:"courierId"`
	DeliveredAt *string       `json:"deliveredAt"`
	Notes       *string       `json:"notes"`
}

func toItemInputs(items []itemPayload) []services.ItemInput {
	return lo.Map(items, func(item itemPayload, _ int) services.ItemInput {
		return services.ItemInput{
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Price:     item.Price,
			BasePrice: item.BasePrice,
			ItemPrice: item.ItemPrice,
			Quantity:  item.Quantity,
			AddOns: lo.Map(item.AddOns, func(a addOnPayload, _ int) services.AddOnInput {
				return services.AddOnInput{Name: a.Name, Price: a.Price}
			}),
			Customizations:     item.Customizations,
			CustomizationPrice: item.CustomizationPrice,
			RemovedIngredients: item.RemovedIngredients,
			Notes:              item.Notes,
		}
	})
}

func toPaymentInput(p paymentPayload) commands.PaymentInput {
	return commands.PaymentInput{
		Method:     p.Method,
		Tendered:   p.Tendered,
		Change:     p.Change,
		CardBrand:  p.CardBrand,
		CardLast4:  p.CardLast4,
		CardHolder: p.CardHolder,
	}
}
