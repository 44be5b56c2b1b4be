// Package courier provides the read model over the courier directory used
// by the dispatch logic. The order core never mutates couriers; it only
// filters and ranks them when an order becomes ready for pickup.
package courier
