package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Arta Hoxha", "+355691234567", "arta@example.com")
	require.NoError(t, err)
	return customer
}

func validAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("Rruga e Kavajes", "12", "Tirana", "1001", nil)
	require.NoError(t, err)
	return address
}

func validItems(t *testing.T) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(
		"margherita", "Pizza Margherita",
		decimal.RequireFromString("8.50"), 2,
		nil, nil, decimal.Zero, nil, "")
	require.NoError(t, err)
	return []order.LineItem{item}
}

func validTotals() order.Totals {
	return order.Totals{
		Subtotal:    decimal.RequireFromString("17.00"),
		DeliveryFee: decimal.RequireFromString("2.50"),
		ServiceFee:  decimal.RequireFromString("0.40"),
		Discount:    decimal.Zero,
		Total:       decimal.RequireFromString("19.90"),
	}
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), 1042, kernel.NewUUID(),
		validCustomer(t), validAddress(t), validItems(t), validTotals(),
		order.Payment{}, 20, "", time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order awaiting payment", func(t *testing.T) {
		now := time.Now()
		id := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		o, err := order.NewOrder(
			id, 7, restaurantID,
			validCustomer(t), validAddress(t), validItems(t), validTotals(),
			order.Payment{}, 25, "ring the bell", now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, int64(7), o.Number())
		assert.True(t, o.RestaurantID().IsEqual(restaurantID))
		assert.Equal(t, order.AwaitingPayment, o.Status())
		assert.Nil(t, o.Courier())
		assert.Nil(t, o.ConfirmedAt())
		assert.Nil(t, o.DelayMinutes())
		assert.False(t, o.PrepTimeWasChanged())
		assert.Equal(t, 25, o.PrepTimeMinutes())
		assert.Equal(t, "ring the bell", o.Notes())
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("fails without items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), 7, kernel.NewUUID(),
			validCustomer(t), validAddress(t), nil, validTotals(),
			order.Payment{}, 25, "", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("fails without restaurant", func(t *testing.T) {
		var noRestaurant kernel.UUID

		_, err := order.NewOrder(
			kernel.NewUUID(), 7, noRestaurant,
			validCustomer(t), validAddress(t), validItems(t), validTotals(),
			order.Payment{}, 25, "", time.Now())

		require.Error(t, err)
	})

	t.Run("fails with unconstructed customer", func(t *testing.T) {
		var customer order.Customer

		_, err := order.NewOrder(
			kernel.NewUUID(), 7, kernel.NewUUID(),
			customer, validAddress(t), validItems(t), validTotals(),
			order.Payment{}, 25, "", time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrCustomerIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("confirmation records the timestamp once", func(t *testing.T) {
		o := newTestOrder(t)
		first := time.Now()

		require.NoError(t, o.ChangeStatus(order.Paid, first))
		require.NoError(t, o.ChangeStatus(order.Confirmed, first))

		require.NotNil(t, o.ConfirmedAt())
		assert.Equal(t, first, *o.ConfirmedAt())
	})

	t.Run("ready on time records no delay", func(t *testing.T) {
		o := newTestOrder(t)
		confirmedAt := time.Now()

		require.NoError(t, o.ChangeStatus(order.Confirmed, confirmedAt))
		// 20 minutes of prep time, ready after 15: early, nothing recorded.
		require.NoError(t, o.ChangeStatus(order.Ready, confirmedAt.Add(15*time.Minute)))

		assert.Nil(t, o.DelayMinutes())
	})

	t.Run("ready exactly on time records no delay", func(t *testing.T) {
		o := newTestOrder(t)
		confirmedAt := time.Now()

		require.NoError(t, o.ChangeStatus(order.Confirmed, confirmedAt))
		require.NoError(t, o.ChangeStatus(order.Ready, confirmedAt.Add(20*time.Minute)))

		assert.Nil(t, o.DelayMinutes())
	})

	t.Run("late ready records the whole-minute overrun", func(t *testing.T) {
		o := newTestOrder(t)
		confirmedAt := time.Now()

		require.NoError(t, o.ChangeStatus(order.Confirmed, confirmedAt))
		// 20 minutes of prep, ready after 27m30s: 7 whole minutes late.
		require.NoError(t, o.ChangeStatus(order.Ready, confirmedAt.Add(27*time.Minute+30*time.Second)))

		require.NotNil(t, o.DelayMinutes())
		assert.Equal(t, 7, *o.DelayMinutes())
	})

	t.Run("ready without confirmation records nothing and does not fail", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Ready, time.Now()))

		assert.Equal(t, order.Ready, o.Status())
		assert.Nil(t, o.DelayMinutes())
	})

	t.Run("delay accounts for a changed prep time", func(t *testing.T) {
		o := newTestOrder(t)
		confirmedAt := time.Now()

		require.NoError(t, o.ChangeStatus(order.Confirmed, confirmedAt))
		require.NoError(t, o.ChangePrepTime(35, 15, confirmedAt))
		// Expected ready moved to +35m; ready at +40m is 5 minutes late.
		require.NoError(t, o.ChangeStatus(order.Ready, confirmedAt.Add(40*time.Minute)))

		require.NotNil(t, o.DelayMinutes())
		assert.Equal(t, 5, *o.DelayMinutes())
	})

	t.Run("rejects invalid transitions", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Cancelled, time.Now()))
		require.Error(t, o.ChangeStatus(order.Paid, time.Now()))
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_ChangePrepTime(t *testing.T) {
	t.Run("first change succeeds and locks", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangePrepTime(35, 15, time.Now()))

		assert.Equal(t, 35, o.PrepTimeMinutes())
		assert.True(t, o.PrepTimeWasChanged())
		require.NotNil(t, o.ExtraPrepMinutes())
		assert.Equal(t, 15, *o.ExtraPrepMinutes())
	})

	t.Run("second change fails and mutates nothing", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangePrepTime(35, 15, time.Now()))

		err := o.ChangePrepTime(45, 10, time.Now())

		require.ErrorIs(t, err, order.ErrPrepTimeAlreadyChanged)
		assert.Equal(t, 35, o.PrepTimeMinutes())
		require.NotNil(t, o.ExtraPrepMinutes())
		assert.Equal(t, 15, *o.ExtraPrepMinutes())
	})

	t.Run("rejects non-positive prep time", func(t *testing.T) {
		o := newTestOrder(t)

		require.Error(t, o.ChangePrepTime(0, 0, time.Now()))
		assert.False(t, o.PrepTimeWasChanged())
	})
}

func TestOrder_AssignCourier(t *testing.T) {
	t.Run("assigns a courier", func(t *testing.T) {
		o := newTestOrder(t)
		courierID := kernel.NewUUID()

		require.NoError(t, o.AssignCourier(courierID, time.Now()))

		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("rejects assignment on terminal orders", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled, time.Now()))

		require.Error(t, o.AssignCourier(kernel.NewUUID(), time.Now()))
		assert.Nil(t, o.Courier())
	})

	t.Run("rejects invalid courier id", func(t *testing.T) {
		o := newTestOrder(t)
		var invalid kernel.UUID

		require.Error(t, o.AssignCourier(invalid, time.Now()))
	})
}

func TestOrder_SetDeliveryFee(t *testing.T) {
	o := newTestOrder(t)
	before := o.Totals()

	require.NoError(t, o.SetDeliveryFee(decimal.RequireFromString("3.75"), time.Now()))

	after := o.Totals()
	assert.True(t, after.DeliveryFee.Equal(decimal.RequireFromString("3.75")))
	// Simple amendments never touch the remaining monetary fields.
	assert.True(t, after.Subtotal.Equal(before.Subtotal))
	assert.True(t, after.Total.Equal(before.Total))

	require.Error(t, o.SetDeliveryFee(decimal.RequireFromString("-1"), time.Now()))
}

func TestOrder_Reprice(t *testing.T) {
	t.Run("replaces items and totals", func(t *testing.T) {
		o := newTestOrder(t)
		item, err := order.NewLineItem(
			"calzone", "Calzone",
			decimal.RequireFromString("9.90"), 1,
			nil, nil, decimal.Zero, nil, "")
		require.NoError(t, err)
		totals := order.Totals{
			Subtotal:    decimal.RequireFromString("9.90"),
			DeliveryFee: decimal.RequireFromString("2.50"),
			ServiceFee:  decimal.Zero,
			Discount:    decimal.Zero,
			Total:       decimal.RequireFromString("12.40"),
		}

		require.NoError(t, o.Reprice([]order.LineItem{item}, totals, time.Now()))

		assert.Len(t, o.Items(), 1)
		assert.Equal(t, "calzone", o.Items()[0].ItemID())
		assert.True(t, o.Totals().Total.Equal(totals.Total))
	})

	t.Run("rejects empty item lists", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Reprice(nil, order.Totals{}, time.Now())

		require.ErrorIs(t, err, order.ErrItemsAreRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round-trips through snapshot", func(t *testing.T) {
		original := newTestOrder(t)
		require.NoError(t, original.ChangeStatus(order.Confirmed, time.Now()))

		restored, err := order.RestoreOrder(original.Snapshot())

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, original.Status(), restored.Status())
		assert.Equal(t, original.PrepTimeMinutes(), restored.PrepTimeMinutes())
		assert.NotNil(t, restored.ConfirmedAt())
	})

	t.Run("rejects invalid snapshots", func(t *testing.T) {
		_, err := order.RestoreOrder(order.Snapshot{})

		require.Error(t, err)
	})
}
