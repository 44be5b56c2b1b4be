// Package http exposes the order fulfillment core over a REST API.
// Caller identity arrives in trusted headers set by the upstream auth
// proxy; this layer translates wire payloads into commands and queries
// and maps domain errors onto HTTP status codes.
package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// Server wires the REST routes to the application layer.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	payOrderHandler        commands.PayOrderCommandHandler
	changeStatusHandler    commands.ChangeOrderStatusCommandHandler
	changePrepTimeHandler  commands.ChangePrepTimeCommandHandler
	amendOrderHandler      commands.AmendOrderCommandHandler
	updateItemsHandler     commands.UpdateOrderItemsCommandHandler
	getOrderQueryHandler   queries.GetOrderQueryHandler
	listOrdersQueryHandler queries.ListOrdersQueryHandler
}

func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	payOrderHandler commands.PayOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	changePrepTimeHandler commands.ChangePrepTimeCommandHandler,
	amendOrderHandler commands.AmendOrderCommandHandler,
	updateItemsHandler commands.UpdateOrderItemsCommandHandler,
	getOrderQueryHandler queries.GetOrderQueryHandler,
	listOrdersQueryHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		payOrderHandler:        payOrderHandler,
		changeStatusHandler:    changeStatusHandler,
		changePrepTimeHandler:  changePrepTimeHandler,
		amendOrderHandler:      amendOrderHandler,
		updateItemsHandler:     updateItemsHandler,
		getOrderQueryHandler:   getOrderQueryHandler,
		listOrdersQueryHandler: listOrdersQueryHandler,
	}
}

// RegisterRoutes mounts every order route under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")
	g.POST("/orders", s.CreateOrder)
	g.GET("/orders", s.GetOrders)
	g.GET("/orders/:id", s.GetOrder)
	g.PUT("/orders/:id", s.UpdateOrder)
	g.POST("/orders/:id/pay", s.PayOrder)
	g.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	g.PATCH("/orders/:id/prep-time", s.ChangePrepTime)
}

// CreateOrder accepts a checkout payload and registers a new order.
// Checkout is unauthenticated; every other route requires identity headers.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		restaurantID,
		commands.CustomerInput{
			Name:  req.Customer.Name,
			Phone: req.Customer.Phone,
			Email: req.Customer.Email,
		},
		commands.AddressInput{
			Street:     req.Address.Street,
			Number:     req.Address.Number,
			City:       req.Address.City,
			PostalCode: req.Address.PostalCode,
			Lat:        req.Address.Lat,
			Lon:        req.Address.Lon,
		},
		toItemInputs(req.Items),
		toPaymentInput(req.Payment),
		req.DeliveryFee,
		req.ServiceFee,
		req.Discount,
		req.PrepTime,
		req.Notes,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// PayOrder settles the order with its stored payment method.
func (s *Server) PayOrder(ctx echo.Context) error {
	a, err := actorFromHeaders(ctx.Request().Header)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewPayOrderCommand(orderID, a)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.payOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus advances the order through its lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	a, err := actorFromHeaders(ctx.Request().Header)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req changeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Status(req.Status), req.Note, a)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangePrepTime applies the restaurant's one-shot preparation time change.
func (s *Server) ChangePrepTime(ctx echo.Context) error {
	a, err := actorFromHeaders(ctx.Request().Header)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req changePrepTimeRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	cmd, err := commands.NewChangePrepTimeCommand(orderID, req.Minutes, req.ExtraMinutes, a)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.changePrepTimeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrder amends order details, or replaces the line items when the
// payload carries an items array. Item replacement re-prices the order;
// the amend path never does.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	a, err := actorFromHeaders(ctx.Request().Header)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	var req updateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, err)
	}

	if req.Items != nil {
		cmd, err := commands.NewUpdateOrderItemsCommand(
			orderID, toItemInputs(req.Items),
			req.DeliveryFee, req.ServiceFee, req.Discount, a,
		)
		if err != nil {
			return respondBadRequest(ctx, err)
		}
		if err := s.updateItemsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
			return respondError(ctx, err)
		}
		return ctx.NoContent(http.StatusNoContent)
	}

	var courierID *kernel.UUID
	if req.CourierID != nil {
		parsed, err := kernel.UUIDFromString(*req.CourierID)
		if err != nil {
			return respondBadRequest(ctx, err)
		}
		courierID = &parsed
	}

	var deliveredAt *time.Time
	if req.DeliveredAt != nil {
		parsed, err := time.Parse(time.RFC3339, *req.DeliveredAt)
		if err != nil {
			return respondBadRequest(ctx, err)
		}
		deliveredAt = &parsed
	}

	cmd, err := commands.NewAmendOrderCommand(
		orderID, courierID, deliveredAt, req.DeliveryFee, req.Notes, a,
	)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	if err := s.amendOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder returns a single order with its line items.
func (s *Server) GetOrder(ctx echo.Context) error {
	a, err := actorFromHeaders(ctx.Request().Header)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, a)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	resp, err := s.getOrderQueryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetOrders lists orders visible to the caller, newest first.
func (s *Server) GetOrders(ctx echo.Context) error {
	a, err := actorFromHeaders(ctx.Request().Header)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	filter, err := filterFromQueryParams(ctx)
	if err != nil {
		return respondBadRequest(ctx, err)
	}

	query := queries.NewListOrdersQuery(filter, a)
	resp, err := s.listOrdersQueryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

func filterFromQueryParams(ctx echo.Context) (order.Filter, error) {
	var filter order.Filter

	params := ctx.QueryParams()

	for _, raw := range params["restaurantId"] {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return order.Filter{}, err
		}
		filter.RestaurantIDs = append(filter.RestaurantIDs, id)
	}

	for _, raw := range params["courierId"] {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return order.Filter{}, err
		}
		filter.CourierIDs = append(filter.CourierIDs, id)
	}

	filter.CustomerEmails = params["customerEmail"]

	filter.Statuses = lo.Map(params["status"], func(raw string, _ int) order.Status {
		return order.Status(raw)
	})
	for _, status := range filter.Statuses {
		if err := status.Validate(); err != nil {
			return order.Filter{}, err
		}
	}

	if raw := ctx.QueryParam("createdAfter"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return order.Filter{}, err
		}
		filter.CreatedAfter = &t
	}
	if raw := ctx.QueryParam("createdBefore"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return order.Filter{}, err
		}
		filter.CreatedBefore = &t
	}

	return filter, nil
}
