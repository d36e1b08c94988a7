package queries

import (
	"context"
	"time"

	"grocery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAgentTasksQueryHandler lists a delivery agent's tasks from the database.
type GetAgentTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentTasksQueryHandler creates a handler for agent task list reads.
// Requires a GORM database connection for query execution.
func NewGetAgentTasksQueryHandler(db *gorm.DB) GetAgentTasksQueryHandler {
	return GetAgentTasksQueryHandler{db: db}
}

// Handle executes the task list query. Active tasks sort before delivered and
// cancelled ones; within each group the oldest order comes first.
func (h GetAgentTasksQueryHandler) Handle(
	ctx context.Context,
	query GetAgentTasksQuery,
) ([]GetAgentTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]GetAgentTasksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.order_id,
			t.status,
			o.customer_id,
			o.delivery_address,
			o.total_price,
			o.payment_method,
			o.created_at
		FROM tasks t
		JOIN orders o ON o.id = t.order_id
		WHERE t.agent_id = ?
		ORDER BY (t.status IN (?, ?)), o.created_at
	`, query.AgentID(), order.StatusDelivered, order.StatusCancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAgentTasksQueryResponse
		var createdAt time.Time

		err = rows.Scan(
			&resp.TaskID,
			&resp.OrderID,
			&resp.Status,
			&resp.CustomerID,
			&resp.DeliveryAddress,
			&resp.TotalPrice,
			&resp.PaymentMethod,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		resp.CreatedAt = createdAt.UTC()
		tasks = append(tasks, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
