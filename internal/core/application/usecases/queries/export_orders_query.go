package queries

import (
	"errors"

	"grocery/internal/pkg/guard"
)

var ErrExportOrdersQueryIsNotConstructed = errors.New(
	"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
)

// ExportOrdersQuery produces the admin's spreadsheet export of all orders.
type ExportOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewExportOrdersQuery creates a query to export every order.
// This is a parameterless query.
func NewExportOrdersQuery() ExportOrdersQuery {
	return ExportOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}
