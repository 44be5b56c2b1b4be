package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items.
// An order that exists but is outside the actor's scope yields an access
// denial, not a not-found: hiding existence is the listing's job, while a
// direct lookup must tell the restaurant console why it was refused.
type GetOrderQueryHandler struct {
	db    *gorm.DB
	scope services.AccessScope
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:    db,
		scope: services.NewAccessScope(),
	}
}

// Handle executes the single-order query.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Where("id = ?", query.OrderID().String()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(row.RestaurantID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	var courierID *kernel.UUID
	if row.CourierID != nil {
		converted, convErr := kernel.UUIDFromBytes(row.CourierID[:])
		if convErr != nil {
			return OrderResponse{}, convErr
		}
		courierID = &converted
	}

	if !h.scope.CanViewRecord(restaurantID, courierID, row.CustomerEmail, query.Actor()) {
		return OrderResponse{}, services.ErrAccessDenied
	}

	response, err := row.toResponse()
	if err != nil {
		return OrderResponse{}, err
	}

	var itemRows []orderItemRow
	if err = h.db.WithContext(ctx).
		Where("order_id = ?", query.OrderID().String()).
		Find(&itemRows).Error; err != nil {
		return OrderResponse{}, err
	}

	for _, item := range itemRows {
		response.Items = append(response.Items, OrderItemResponse{
			ItemID:    item.ItemID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Total:     item.Total,
		})
	}

	return response, nil
}
