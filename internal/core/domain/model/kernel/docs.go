// Package kernel provides core domain primitives for the storefront order
// system. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package contains:
//   - UUID: a validated identifier value object wrapping github.com/google/uuid
//   - GeoPoint: a validated geographic coordinate pair with great-circle
//     distance calculation
//
// All kernel types are immutable value objects. Their zero values are invalid
// and fail validation; instances must be created through the provided
// constructor functions.
package kernel
