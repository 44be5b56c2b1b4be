package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestActorFromHeaders(t *testing.T) {
	t.Run("should build a full actor from identity headers", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		userID := kernel.NewUUID()

		h := http.Header{}
		h.Set(headerUserID, userID.String())
		h.Set(headerUserEmail, "ada@example.com")
		h.Set(headerUserRole, "user")
		h.Set(headerUserType, "restaurant")
		h.Set(headerRestaurantID, restaurantID.String())

		a, err := actorFromHeaders(h)

		require.NoError(t, err)
		assert.True(t, a.ID.IsEqual(userID))
		assert.Equal(t, "ada@example.com", a.Email)
		assert.Equal(t, actor.RoleUser, a.Role)
		assert.Equal(t, actor.TypeRestaurant, a.UserType)
		require.NotNil(t, a.RestaurantID)
		assert.True(t, a.RestaurantID.IsEqual(restaurantID))
	})

	t.Run("should fail without a user id header", func(t *testing.T) {
		h := http.Header{}
		h.Set(headerUserEmail, "ada@example.com")

		_, err := actorFromHeaders(h)

		assert.Error(t, err)
	})

	t.Run("should fail on a malformed restaurant id", func(t *testing.T) {
		h := http.Header{}
		h.Set(headerUserID, kernel.NewUUID().String())
		h.Set(headerRestaurantID, "not-a-uuid")

		_, err := actorFromHeaders(h)

		assert.Error(t, err)
	})
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "should map not found to 404",
			err:        errs.NewObjectNotFoundError("orderId", "42"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "should map access denial to 403",
			err:        services.ErrAccessDenied,
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
		},
		{
			name:       "should map a repeated prep time change to 409",
			err:        order.ErrPrepTimeAlreadyChanged,
			wantStatus: http.StatusConflict,
			wantCode:   "PREPARATION_TIME_ALREADY_CHANGED",
		},
		{
			name:       "should map invalid values to 400",
			err:        errs.NewValueIsInvalidError("status"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "should map unknown errors to 500",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, rec := newTestContext(t, http.MethodGet, "/", "")

			err := respondError(ctx, tt.err)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
		})
	}
}

func TestCreateOrderValidation(t *testing.T) {
	s := &Server{}

	t.Run("should reject a malformed restaurant id", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPost, "/api/v1/orders",
			`{"restaurantId":"nope","items":[{"name":"Margherita","price":10,"quantity":1}]}`)

		err := s.CreateOrder(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("should reject an order without items", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPost, "/api/v1/orders",
			`{"restaurantId":"`+kernel.NewUUID().String()+`","customer":{"name":"Ada","phone":"+355691234567","email":"ada@example.com"},"address":{"street":"Rruga e Kavajes","number":"1","city":"Tirana"},"payment":{"method":"cash"},"items":[]}`)

		err := s.CreateOrder(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChangeOrderStatusValidation(t *testing.T) {
	s := &Server{}

	t.Run("should reject an unknown status", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPatch, "/",
			`{"status":"teleported"}`)
		ctx.Request().Header.Set(headerUserID, kernel.NewUUID().String())
		ctx.Request().Header.Set(headerUserRole, "admin")
		ctx.SetParamNames("id")
		ctx.SetParamValues(kernel.NewUUID().String())

		err := s.ChangeOrderStatus(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("should reject a request without identity headers", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPatch, "/",
			`{"status":"confirmed"}`)
		ctx.SetParamNames("id")
		ctx.SetParamValues(kernel.NewUUID().String())

		err := s.ChangeOrderStatus(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateOrderValidation(t *testing.T) {
	s := &Server{}

	t.Run("should reject an empty amendment", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPut, "/", `{}`)
		ctx.Request().Header.Set(headerUserID, kernel.NewUUID().String())
		ctx.Request().Header.Set(headerUserRole, "admin")
		ctx.SetParamNames("id")
		ctx.SetParamValues(kernel.NewUUID().String())

		err := s.UpdateOrder(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject a malformed delivered timestamp", func(t *testing.T) {
		ctx, rec := newTestContext(t, http.MethodPut, "/",
			`{"deliveredAt":"yesterday"}`)
		ctx.Request().Header.Set(headerUserID, kernel.NewUUID().String())
		ctx.Request().Header.Set(headerUserRole, "admin")
		ctx.SetParamNames("id")
		ctx.SetParamValues(kernel.NewUUID().String())

		err := s.UpdateOrder(ctx)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFilterFromQueryParams(t *testing.T) {
	t.Run("should parse every supported filter field", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		courierID := kernel.NewUUID()
		target := "/api/v1/orders?restaurantId=" + restaurantID.String() +
			"&courierId=" + courierID.String() +
			"&customerEmail=ada@example.com" +
			"&status=ready&status=delivered" +
			"&createdAfter=2026-08-01T00:00:00Z" +
			"&createdBefore=2026-09-01T00:00:00Z"
		ctx, _ := newTestContext(t, http.MethodGet, target, "")

		filter, err := filterFromQueryParams(ctx)

		require.NoError(t, err)
		require.Len(t, filter.RestaurantIDs, 1)
		assert.True(t, filter.RestaurantIDs[0].IsEqual(restaurantID))
		require.Len(t, filter.CourierIDs, 1)
		assert.True(t, filter.CourierIDs[0].IsEqual(courierID))
		assert.Equal(t, []string{"ada@example.com"}, filter.CustomerEmails)
		assert.Equal(t, []order.Status{order.Ready, order.Delivered}, filter.Statuses)
		require.NotNil(t, filter.CreatedAfter)
		require.NotNil(t, filter.CreatedBefore)
		assert.True(t, filter.CreatedAfter.Before(*filter.CreatedBefore))
	})

	t.Run("should reject an unknown status filter", func(t *testing.T) {
		ctx, _ := newTestContext(t, http.MethodGet, "/api/v1/orders?status=lost", "")

		_, err := filterFromQueryParams(ctx)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a malformed time bound", func(t *testing.T) {
		ctx, _ := newTestContext(t, http.MethodGet, "/api/v1/orders?createdAfter=tomorrow", "")

		_, err := filterFromQueryParams(ctx)

		assert.Error(t, err)
	})
}
