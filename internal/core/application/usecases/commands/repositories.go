// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierDirFactory provides access to the courier directory within
	// a transaction.
	CourierDirFactory interface {
		CourierDirectory() ports.CourierDirectory
	}

	// RestaurantDirFactory provides access to the restaurant directory
	// within a transaction.
	RestaurantDirFactory interface {
		RestaurantDirectory() ports.RestaurantDirectory
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only touch order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW manages transactions for order creation, which reads
	// restaurant defaults while writing the order.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantDirFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// FulfillmentUoW manages transactions that span the order aggregate
	// and the courier and restaurant directories, such as the status
	// change that triggers courier dispatch.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		CourierDirFactory
		RestaurantDirFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}
)
