// Package services provides domain services for the grocery ordering system:
// business operations that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - InvoiceProjector: a pure projection from an order snapshot to a
//     printable invoice document
//
// Domain services here are stateless; all inputs arrive as arguments and all
// results leave as return values.
package services
