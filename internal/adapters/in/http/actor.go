package http

import (
	"net/http"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
)

// Identity headers set by the upstream auth proxy.
const (
	headerUserID       = "X-User-Id"
	headerUserEmail    = "X-User-Email"
	headerUserRole     = "X-User-Role"
	headerUserType     = "X-User-Type"
	headerRestaurantID = "X-Restaurant-Id"
)

func actorFromHeaders(h http.Header) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(h.Get(headerUserID))
	if err != nil {
		return actor.Actor{}, err
	}

	var restaurantID *kernel.UUID
	if raw := h.Get(headerRestaurantID); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return actor.Actor{}, err
		}
		restaurantID = &parsed
	}

	return actor.Actor{
		ID:           id,
		Email:        h.Get(headerUserEmail),
		Role:         actor.Role(h.Get(headerUserRole)),
		UserType:     actor.UserType(h.Get(headerUserType)),
		RestaurantID: restaurantID,
	}, nil
}
