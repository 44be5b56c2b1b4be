package queries

import (
	"context"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves orders from the database with the
// actor's access scope applied on top of the caller's filter. A denial
// surfaces as an error, never as an empty page: callers must be able to
// distinguish "nothing matched" from "you may not ask".
type ListOrdersQueryHandler struct {
	db    *gorm.DB
	scope services.AccessScope
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		db:    db,
		scope: services.NewAccessScope(),
	}
}

// Handle executes the listing query. Filter conditions combine with AND
// across fields and OR within a field; results come back newest first.
func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter, err := h.scope.ScopeFilter(query.Filter(), query.Actor())
	if err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Model(&orderRow{})

	if len(filter.RestaurantIDs) > 0 {
		tx = tx.Where("restaurant_id IN ?", uuidStrings(filter.RestaurantIDs))
	}
	if len(filter.CourierIDs) > 0 {
		tx = tx.Where("courier_id IN ?", uuidStrings(filter.CourierIDs))
	}
	if len(filter.CustomerEmails) > 0 {
		emails := lo.Map(filter.CustomerEmails, func(email string, _ int) string {
			return strings.ToLower(email)
		})
		tx = tx.Where("LOWER(customer_email) IN ?", emails)
	}
	if len(filter.Statuses) > 0 {
		statuses := lo.Map(filter.Statuses, func(s order.Status, _ int) string {
			return s.String()
		})
		tx = tx.Where("status IN ?", statuses)
	}
	if filter.CreatedAfter != nil {
		tx = tx.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		tx = tx.Where("created_at < ?", *filter.CreatedBefore)
	}

	var rows []orderRow
	if err = tx.Order("created_at DESC, number DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(rows))
	for _, row := range rows {
		response, convErr := row.toResponse()
		if convErr != nil {
			return nil, convErr
		}
		responses = append(responses, response)
	}

	return responses, nil
}

func uuidStrings(ids []kernel.UUID) []string {
	return lo.Map(ids, func(id kernel.UUID, _ int) string {
		return id.String()
	})
}
