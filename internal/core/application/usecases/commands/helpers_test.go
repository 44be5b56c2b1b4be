package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/restaurant"
	"storefront/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func adminActor() actor.Actor {
	return actor.Actor{
		ID:       kernel.NewUUID(),
		Email:    "ops@storefront.local",
		Role:     actor.RoleAdmin,
		UserType: actor.TypeAdmin,
	}
}

func customerActor(email string) actor.Actor {
	return actor.Actor{
		ID:       kernel.NewUUID(),
		Email:    email,
		Role:     actor.RoleUser,
		UserType: actor.TypeCustomer,
	}
}

func validItemInputs() []services.ItemInput {
	return []services.ItemInput{
		{ItemID: "margherita", Name: "Margherita", UnitPrice: "10.00", Quantity: 2},
	}
}

func validCustomerInput() commands.CustomerInput {
	return commands.CustomerInput{
		Name:  "Ada Byron",
		Phone: "+355691234567",
		Email: "ada@example.com",
	}
}

func validAddressInput() commands.AddressInput {
	return commands.AddressInput{
		Street: "Rruga Myslym Shyri",
		Number: "12",
		City:   "Tirana",
	}
}

func newPaidCardOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Ada Byron", "+355691234567", "ada@example.com")
	require.NoError(t, err)

	address, err := order.NewAddress("Rruga Myslym Shyri", "12", "Tirana", "", nil)
	require.NoError(t, err)

	payment, err := order.NewCardPayment("visa", "4242", "ADA BYRON")
	require.NoError(t, err)

	item, err := order.NewLineItem(
		"margherita", "Margherita", decimal.RequireFromString("10.00"), 2,
		nil, nil, decimal.Zero, nil, "")
	require.NoError(t, err)

	totals := order.Totals{
		Subtotal:    decimal.RequireFromString("20.00"),
		DeliveryFee: decimal.RequireFromString("2.50"),
		Total:       decimal.RequireFromString("22.50"),
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), 1001, kernel.NewUUID(), customer, address,
		[]order.LineItem{item}, totals, payment, 20, "", time.Now().UTC())
	require.NoError(t, err)

	if status != order.AwaitingPayment {
		require.NoError(t, o.ChangeStatus(status, time.Now().UTC()))
	}

	return o
}

func newAwaitingCashOrder(t *testing.T) *order.Order {
	t.Helper()

	customer, err := order.NewCustomer("Ada Byron", "+355691234567", "ada@example.com")
	require.NoError(t, err)

	address, err := order.NewAddress("Rruga Myslym Shyri", "", "", "", nil)
	require.NoError(t, err)

	payment, err := order.NewCashPayment(
		decimal.RequireFromString("30.00"), decimal.RequireFromString("7.50"))
	require.NoError(t, err)

	item, err := order.NewLineItem(
		"margherita", "Margherita", decimal.RequireFromString("10.00"), 2,
		nil, nil, decimal.Zero, nil, "")
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), 1002, kernel.NewUUID(), customer, address,
		[]order.LineItem{item}, order.Totals{}, payment, 20, "", time.Now().UTC())
	require.NoError(t, err)

	return o
}

func newTestRestaurant(t *testing.T, location *kernel.GeoPoint) *restaurant.Restaurant {
	t.Helper()

	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), "Pizzeria Era", location, 25, decimal.RequireFromString("2.50"))
	require.NoError(t, err)

	return r
}
