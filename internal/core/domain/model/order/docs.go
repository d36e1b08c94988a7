// Package order provides the order aggregate and its delivery status state
// machine for the grocery ordering system.
//
// The package includes:
//   - Order: the aggregate root holding the price-locked item snapshot,
//     delivery details, and lifecycle status
//   - Status: a table-driven state machine enforcing legal transitions
//   - Item: one immutable line of the order snapshot
//   - PaymentMethod: the recorded (not settled) payment choice
//
// Key business rules:
//   - An order is created in pending status with a server-computed total
//   - The item snapshot never changes after submission; later catalog price
//     changes do not affect existing orders
//   - Status moves pending -> assigned -> picked_up -> on_the_way -> delivered,
//     with cancelled reachable from pending or assigned only
//   - delivered and cancelled are terminal; any other requested transition
//     fails and leaves the persisted status untouched
package order
