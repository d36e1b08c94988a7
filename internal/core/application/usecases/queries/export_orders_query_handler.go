package queries

import (
	"context"
	"database/sql"
	"time"

	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportOrdersQueryHandler builds an xlsx workbook of all orders for the
// admin's offline reporting. One row per order, tasks and agents joined in
// when present.
type ExportOrdersQueryHandler struct {
	db *gorm.DB
}

// NewExportOrdersQueryHandler creates a handler for order exports.
// Requires a GORM database connection for query execution.
func NewExportOrdersQueryHandler(db *gorm.DB) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{db: db}
}

// Handle executes the export query and returns the workbook. The caller
// decides how to deliver it; the HTTP adapter streams it as an attachment.
func (h ExportOrdersQueryHandler) Handle(
	ctx context.Context,
	query ExportOrdersQuery,
) (*xlsx.File, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.total_price,
			o.delivery_address,
			o.payment_method,
			o.status,
			o.created_at,
			a.name
		FROM orders o
		LEFT JOIN tasks t ON t.order_id = o.id
		LEFT JOIN agents a ON a.id = t.agent_id
		ORDER BY o.created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return nil, err
	}

	headers := []string{
		"OrderID", "CustomerID", "TotalPrice", "DeliveryAddress",
		"PaymentMethod", "Status", "CreatedAt", "DeliveryAgent",
	}
	headerRow := sheet.AddRow()
	for _, header := range headers {
		headerRow.AddCell().SetValue(header)
	}

	for rows.Next() {
		var (
			id              string
			customerID      string
			totalPrice      float64
			deliveryAddress string
			paymentMethod   string
			status          string
			createdAt       time.Time
			agentName       sql.NullString
		)

		err = rows.Scan(
			&id,
			&customerID,
			&totalPrice,
			&deliveryAddress,
			&paymentMethod,
			&status,
			&createdAt,
			&agentName,
		)
		if err != nil {
			return nil, err
		}

		row := sheet.AddRow()
		row.AddCell().SetValue(id)
		row.AddCell().SetValue(customerID)
		row.AddCell().SetValue(totalPrice)
		row.AddCell().SetValue(deliveryAddress)
		row.AddCell().SetValue(paymentMethod)
		row.AddCell().SetValue(status)
		row.AddCell().SetValue(createdAt.UTC().Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(agentName.String)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return file, nil
}
