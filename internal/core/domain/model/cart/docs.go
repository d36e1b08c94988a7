// Package cart provides the shopping cart aggregate for the grocery ordering
// system. A cart belongs to exactly one customer and holds line items that are
// unique by product id.
//
// Key business rules:
//   - Adding a product already in the cart merges quantities into one line
//   - No line ever has quantity below 1; setting quantity to 0 removes the line
//   - Total and item count are always recomputed from the current lines
//   - Clearing is atomic and only happens after a successful order submission
//
// The aggregate is a pure in-memory representation; durable persistence is the
// responsibility of the CartStore port so the cart survives client reloads.
package cart
