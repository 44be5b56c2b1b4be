package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders only
// move forward through the fulfillment pipeline:
//
//	awaiting_payment -> paid -> confirmed -> preparing -> ready
//	    -> out_for_delivery -> delivered
//
// cancelled and rejected are reachable from every non-terminal state.
// delivered, cancelled and rejected are terminal: no further transition is
// allowed out of them. Skipping ahead along the pipeline is permitted
// (an order may go straight from paid to ready), moving backwards is not.
type Status string

const (
	// AwaitingPayment is the initial status assigned at checkout.
	AwaitingPayment Status = "awaiting_payment"

	// Paid indicates the payment gateway confirmed the charge.
	Paid Status = "paid"

	// Confirmed indicates the restaurant accepted the order.
	// Entering this status anchors the preparation-delay computation.
	Confirmed Status = "confirmed"

	// Preparing indicates the kitchen started working on the order.
	Preparing Status = "preparing"

	// Ready indicates the order is packed and waiting for pickup.
	// Entering this status triggers courier assignment.
	Ready Status = "ready"

	// OutForDelivery indicates a courier picked up the order.
	OutForDelivery Status = "out_for_delivery"

	// Delivered is the successful terminal status.
	Delivered Status = "delivered"

	// Cancelled is the terminal status for orders withdrawn by the
	// customer or the platform.
	Cancelled Status = "cancelled"

	// Rejected is the terminal status for orders declined by the
	// restaurant.
	Rejected Status = "rejected"
)

// statusRank orders the fulfillment pipeline. Terminal side states carry no
// rank; they are handled separately.
func statusRank() map[Status]int {
	return map[Status]int{
		AwaitingPayment: 1,
		Paid:            2,
		Confirmed:       3,
		Preparing:       4,
		Ready:           5,
		OutForDelivery:  6,
		Delivered:       7,
	}
}

// Validate checks that the Status is one of the defined values.
// The empty string and any unknown value are invalid.
func (s Status) Validate() error {
	switch s {
	case AwaitingPayment, Paid, Confirmed, Preparing, Ready, OutForDelivery,
		Delivered, Cancelled, Rejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String returns the wire representation of the status.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Rejected
}

// Transition validates a transition from the receiver to the target status
// and returns the target on success.
//
// Allowed transitions:
//   - any non-terminal status to a strictly later pipeline status
//     (skipping intermediate stages is allowed)
//   - any non-terminal status to Cancelled or Rejected
//
// Everything else, including any transition out of a terminal status and any
// backwards move along the pipeline, is rejected.
func (s Status) Transition(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return "", err
	}

	if s.IsTerminal() {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is terminal and cannot change to %s", s, to))
	}

	if to == Cancelled || to == Rejected {
		return to, nil
	}

	ranks := statusRank()
	if ranks[to] <= ranks[s] {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot move from %s back to %s", s, to))
	}

	return to, nil
}
