// Package order provides domain entities and business logic for order
// management in the storefront system. It implements the Order aggregate
// root with its monetary breakdown, lifecycle state machine, one-shot
// preparation-time lock, and courier assignment record.
//
// The aggregate enforces its invariants through validated constructors and
// mutators; persisted state is rehydrated through RestoreOrder and exported
// through Snapshot.
package order
