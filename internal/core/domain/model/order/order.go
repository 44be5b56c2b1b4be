package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when creating or repricing an order
	// with an empty item list.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrPrepTimeAlreadyChanged is returned on a second attempt to change
	// the preparation time. The change is a one-shot business rule: once a
	// restaurant adjusted the prep time the customer was notified, and the
	// adjustment cannot be amended again.
	ErrPrepTimeAlreadyChanged = errors.New("preparation time already changed")
)

// Order is the aggregate root of the fulfillment core. It owns the full
// monetary breakdown derived from its line items, the lifecycle status with
// its transition side effects, the one-shot preparation-time lock, and the
// optional courier assignment.
//
// Invariants:
//   - identity and restaurant reference are valid UUIDs
//   - the item list is never empty
//   - total == max(0, subtotal + deliveryFee + serviceFee - discount),
//     established by the pricing engine whenever items change
//   - status transitions follow the Status state machine
//   - the preparation time can be changed at most once
//
// Orders are never physically deleted; cancelled and rejected act as soft
// terminal states.
type Order struct {
	id           kernel.UUID
	number       int64
	restaurantID kernel.UUID
	courierID    *kernel.UUID

	status   Status
	items    []LineItem
	totals   Totals
	payment  Payment
	customer Customer
	address  Address
	notes    string

	confirmedAt *time.Time
	deliveredAt *time.Time

	prepTimeMinutes    int
	prepTimeWasChanged bool
	extraPrepMinutes   *int
	delayMinutes       *int

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates an order at checkout in AwaitingPayment status.
//
// Parameters:
//   - id: unique order identifier
//   - number: human-facing sequence number, unique per order
//   - restaurantID: the restaurant fulfilling the order
//   - customer: validated contact details
//   - address: validated delivery destination
//   - items: priced line items (must be non-empty)
//   - totals: monetary breakdown produced by the pricing engine
//   - payment: chosen payment method, possibly unspecified
//   - prepTimeMinutes: the restaurant's expected preparation time
//   - notes: free-form order notes
//   - now: creation timestamp
func NewOrder(
	id kernel.UUID,
	number int64,
	restaurantID kernel.UUID,
	customer Customer,
	address Address,
	items []LineItem,
	totals Totals,
	payment Payment,
	prepTimeMinutes int,
	notes string,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        AwaitingPayment,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setCustomer(customer),
		o.setAddress(address),
		o.setItems(items),
		o.setPrepTimeMinutes(prepTimeMinutes),
	); err != nil {
		return nil, err
	}

	o.number = number
	o.totals = totals
	o.payment = payment
	o.notes = notes
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// Snapshot is the complete externally visible state of an order. It is used
// to rehydrate aggregates from persistence and to map them back out without
// exposing the aggregate's internals field by field.
type Snapshot struct {
	ID           kernel.UUID
	Number       int64
	RestaurantID kernel.UUID
	CourierID    *kernel.UUID

	Status   Status
	Items    []LineItem
	Totals   Totals
	Payment  Payment
	Customer Customer
	Address  Address
	Notes    string

	ConfirmedAt *time.Time
	DeliveredAt *time.Time

	PrepTimeMinutes    int
	PrepTimeWasChanged bool
	ExtraPrepMinutes   *int
	DelayMinutes       *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RestoreOrder rebuilds an order from persisted state. Identity and status
// are validated; everything else is trusted as previously validated by the
// constructors that produced it.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(
		s.ID.Validate(),
		s.RestaurantID.Validate(),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:                 s.ID,
		number:             s.Number,
		restaurantID:       s.RestaurantID,
		courierID:          s.CourierID,
		status:             s.Status,
		items:              s.Items,
		totals:             s.Totals,
		payment:            s.Payment,
		customer:           s.Customer,
		address:            s.Address,
		notes:              s.Notes,
		confirmedAt:        s.ConfirmedAt,
		deliveredAt:        s.DeliveredAt,
		prepTimeMinutes:    s.PrepTimeMinutes,
		prepTimeWasChanged: s.PrepTimeWasChanged,
		extraPrepMinutes:   s.ExtraPrepMinutes,
		delayMinutes:       s.DelayMinutes,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		isConstructed:      true,
	}, nil
}

// Snapshot returns the complete externally visible state of the order.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                 o.id,
		Number:             o.number,
		RestaurantID:       o.restaurantID,
		CourierID:          o.courierID,
		Status:             o.status,
		Items:              o.items,
		Totals:             o.totals,
		Payment:            o.payment,
		Customer:           o.customer,
		Address:            o.address,
		Notes:              o.notes,
		ConfirmedAt:        o.confirmedAt,
		DeliveredAt:        o.deliveredAt,
		PrepTimeMinutes:    o.prepTimeMinutes,
		PrepTimeWasChanged: o.prepTimeWasChanged,
		ExtraPrepMinutes:   o.extraPrepMinutes,
		DelayMinutes:       o.delayMinutes,
		CreatedAt:          o.createdAt,
		UpdatedAt:          o.updatedAt,
	}
}

// Validate ensures the Order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing sequence number.
func (o *Order) Number() int64 {
	return o.number
}

// RestaurantID returns the fulfilling restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Courier returns the assigned courier's ID, or nil when unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the current line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// Totals returns the monetary breakdown.
func (o *Order) Totals() Totals {
	return o.totals
}

// Payment returns the payment details.
func (o *Order) Payment() Payment {
	return o.payment
}

// Customer returns the customer contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Address returns the delivery address.
func (o *Order) Address() Address {
	return o.address
}

// Notes returns the free-form order notes.
func (o *Order) Notes() string {
	return o.notes
}

// ConfirmedAt returns when the restaurant confirmed the order, or nil.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// PrepTimeMinutes returns the expected preparation time in minutes.
func (o *Order) PrepTimeMinutes() int {
	return o.prepTimeMinutes
}

// PrepTimeWasChanged reports whether the one-shot prep-time change was used.
func (o *Order) PrepTimeWasChanged() bool {
	return o.prepTimeWasChanged
}

// ExtraPrepMinutes returns the prep-time delta recorded by the one allowed
// change, or nil when the prep time was never changed.
func (o *Order) ExtraPrepMinutes() *int {
	return o.extraPrepMinutes
}

// DelayMinutes returns the recorded preparation overrun in whole minutes,
// or nil when the order was ready on time or was never confirmed.
func (o *Order) DelayMinutes() *int {
	return o.delayMinutes
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus transitions the order to the target status and applies the
// transition's side effects exactly once:
//
//   - entering Confirmed records confirmedAt, the anchor for delay tracking
//   - entering Ready computes the preparation delay against
//     confirmedAt + prepTimeMinutes; only a positive overrun is recorded,
//     and an order that was never confirmed records nothing
//
// Courier assignment on the Ready transition is orchestrated by the
// application layer, which owns the courier directory lookup.
func (o *Order) ChangeStatus(to Status, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Transition(to)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now

	switch newStatus {
	case Confirmed:
		if o.confirmedAt == nil {
			confirmedAt := now
			o.confirmedAt = &confirmedAt
		}
	case Ready:
		o.recordPrepDelay(now)
	}

	return nil
}

// recordPrepDelay stores how many whole minutes the kitchen overran the
// expected ready time. Orders that were never confirmed have no anchor and
// record nothing; being early or exactly on time records nothing either.
func (o *Order) recordPrepDelay(now time.Time) {
	if o.confirmedAt == nil {
		return
	}

	expectedReady := o.confirmedAt.Add(time.Duration(o.prepTimeMinutes) * time.Minute)
	delay := int(math.Floor(now.Sub(expectedReady).Minutes()))
	if delay > 0 {
		o.delayMinutes = &delay
	}
}

// ChangePrepTime applies the one allowed preparation-time change.
// A second attempt fails with ErrPrepTimeAlreadyChanged and leaves every
// field untouched. extraMinutes is the delta already computed by the caller
// and is stored for display alongside the new absolute prep time.
func (o *Order) ChangePrepTime(minutes, extraMinutes int, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.prepTimeWasChanged {
		return ErrPrepTimeAlreadyChanged
	}

	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"prepTimeMinutes", fmt.Errorf("%d is not greater than 0", minutes))
	}

	o.prepTimeMinutes = minutes
	o.extraPrepMinutes = &extraMinutes
	o.prepTimeWasChanged = true
	o.updatedAt = now

	return nil
}

// AssignCourier records the courier selected for this order.
// Terminal orders cannot receive a courier.
func (o *Order) AssignCourier(courierID kernel.UUID, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s order cannot receive a courier", o.status))
	}

	o.courierID = &courierID
	o.updatedAt = now

	return nil
}

// SetDeliveredAt records the delivery timestamp reported by the courier.
func (o *Order) SetDeliveredAt(at time.Time, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.deliveredAt = &at
	o.updatedAt = now

	return nil
}

// SetDeliveryFee overrides the delivery fee without recomputing the total.
// Simple amendments deliberately leave the remaining monetary fields alone;
// only a full item update runs the pricing engine again.
func (o *Order) SetDeliveryFee(fee decimal.Decimal, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if fee.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryFee", fmt.Errorf("%s is negative", fee))
	}

	o.totals.DeliveryFee = fee.Round(2)
	o.updatedAt = now

	return nil
}

// SetNotes replaces the free-form order notes.
func (o *Order) SetNotes(notes string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.notes = notes
	o.updatedAt = now

	return nil
}

// Reprice replaces the line items and the complete monetary breakdown with
// the output of a fresh pricing-engine run. Caller-supplied subtotals and
// totals never enter the aggregate through any other path.
func (o *Order) Reprice(items []LineItem, totals Totals, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	o.items = append([]LineItem(nil), items...)
	o.totals = totals
	o.updatedAt = now

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurantId", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = append([]LineItem(nil), items...)
	return nil
}

func (o *Order) setPrepTimeMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"prepTimeMinutes", fmt.Errorf("%d is negative", minutes))
	}
	o.prepTimeMinutes = minutes
	return nil
}
