// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the storefront system: the pricing
// engine that derives an order's monetary breakdown from its line items, the
// dispatcher that selects the nearest available courier, and the access
// scope resolver that narrows queries and record access per actor.
//
// All services in this package are pure over their inputs: they perform no
// I/O and may be called concurrently without coordination.
package services
