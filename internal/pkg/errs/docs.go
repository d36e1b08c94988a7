// Package errs provides standardized error types for the grocery ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping used throughout the codebase.
//
// The package covers the error families the order workflow needs:
//   - ValueIsRequiredError: a required value is missing (empty cart, blank address)
//   - ValueIsInvalidError: a value is present but unacceptable (unknown payment method)
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds (coordinates)
//   - ObjectNotFoundError: an order, task, or agent lookup matched nothing
//   - InvalidTransitionError: a status change the delivery state machine forbids
//   - RepositoryError: a storage or network failure behind a repository call
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Handlers classify failures with errors.Is against the sentinels; the HTTP
// adapter maps them onto response codes the same way.
package errs
