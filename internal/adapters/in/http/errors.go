package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// Error is the wire shape of every non-2xx response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, order.ErrPrepTimeAlreadyChanged):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    "PREPARATION_TIME_ALREADY_CHANGED",
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrAccessDenied):
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    "FORBIDDEN",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    "NOT_FOUND",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		})
	}
}

func respondBadRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    "VALIDATION_ERROR",
		Message: err.Error(),
	})
}
