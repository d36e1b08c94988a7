package tracking

import (
	"context"

	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
)

// QueryFetcher adapts the single-order read model to the OrderFetcher
// contract.
type QueryFetcher struct {
	handler queries.GetOrderQueryHandler
}

// NewQueryFetcher creates a fetcher over the order query handler.
func NewQueryFetcher(handler queries.GetOrderQueryHandler) QueryFetcher {
	return QueryFetcher{handler: handler}
}

// Fetch retrieves the order's current snapshot.
func (f QueryFetcher) Fetch(ctx context.Context, orderID kernel.UUID) (queries.GetOrderQueryResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.GetOrderQueryResponse{}, err
	}

	return f.handler.Handle(ctx, query)
}
