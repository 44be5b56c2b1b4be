package order

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// Filter narrows an order listing. Fields combine with AND semantics across
// fields and OR semantics within each slice; empty fields do not constrain
// the result. The access scope resolver narrows a caller-supplied Filter
// before it ever reaches the read side, so a Filter that leaves this package
// is always safe to execute verbatim.
type Filter struct {
	RestaurantIDs  []kernel.UUID
	CourierIDs     []kernel.UUID
	CustomerEmails []string
	Statuses       []Status
	CreatedBefore  *time.Time
	CreatedAfter   *time.Time
}
