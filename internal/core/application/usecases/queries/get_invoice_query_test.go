package queries_test

import (
	"context"
	"testing"
	"time"

	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewGetInvoiceQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetInvoiceQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.OrderID())
}

func TestGetInvoiceQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetInvoiceQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetInvoiceQueryIsNotConstructed)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func TestGetInvoiceQueryHandler_Handle_ProjectsStoredOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	item, err := order.NewItem("prod-1", "Oat Milk", 3.49, "", 2)
	require.NoError(t, err)
	stored, err := order.RestoreOrder(
		orderID, "cust-1", []order.Item{item}, 6.98, "12 Baker St",
		order.PaymentCashOnDelivery, nil, order.StatusDelivered,
		time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC), nil)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).Return(stored, nil).Once()

	query, err := queries.NewGetInvoiceQuery(orderID)
	require.NoError(t, err)

	h := queries.NewGetInvoiceQueryHandler(repo)
	invoice, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, orderID.String(), invoice.OrderID)
	assert.InDelta(t, 6.98, invoice.GrandTotal, 0.001)
	assert.False(t, invoice.TotalMismatch)
	repo.AssertExpectations(t)
}

func TestGetInvoiceQueryHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	repo := new(MockOrderRepository)
	repo.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderID", orderID.String())).Once()

	query, err := queries.NewGetInvoiceQuery(orderID)
	require.NoError(t, err)

	h := queries.NewGetInvoiceQueryHandler(repo)
	_, err = h.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
