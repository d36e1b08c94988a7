package cmd

import (
	"log/slog"
	"time"

	"grocery/internal/adapters/out/postgres"
	"grocery/internal/adapters/out/postgres/agentdir"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/ports"
	"grocery/internal/tracking"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	cartStore ports.CartStore
	notifier  ports.CartChangeNotifier
	locator   ports.GeoLocator
	publisher ports.OrderEventPublisher
	agents    ports.AgentDirectory
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	cartStore ports.CartStore,
	notifier ports.CartChangeNotifier,
	locator ports.GeoLocator,
	publisher ports.OrderEventPublisher,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cartStore:  cartStore,
		notifier:   notifier,
		locator:    locator,
		publisher:  publisher,
		agents:     agentdir.NewGormAgentDirectory(gormDB),
	}
}

func (c *CompositionRoot) AgentDirectory() ports.AgentDirectory {
	return c.agents
}

// OrderRepository returns an order repository bound to the main connection,
// outside any transaction. Jobs use it for read sweeps.
func (c *CompositionRoot) OrderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

// TaskRepository returns a task repository bound to the main connection,
// outside any transaction.
func (c *CompositionRoot) TaskRepository() ports.TaskRepository {
	return c.uowFactory.Create().TaskRepository()
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartStore, c.notifier)
}

func (c *CompositionRoot) CreateSetCartItemQuantityCommandHandler() commands.SetCartItemQuantityCommandHandler {
	return commands.NewSetCartItemQuantityCommandHandler(c.cartStore, c.notifier)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartStore, c.notifier)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOrderCommandHandler(f, c.cartStore, c.notifier, c.locator, c.publisher)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAgentCommandHandler(f, c.agents, c.publisher)
}

func (c *CompositionRoot) CreateAdvanceTaskCommandHandler() commands.AdvanceTaskCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceTaskCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.cartStore)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAgentTasksQueryHandler() queries.GetAgentTasksQueryHandler {
	return queries.NewGetAgentTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.OrderRepository())
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(c.gormDB)
}

// CreateTrackingPoller builds the order tracking poller over the single-order
// read model. Subscriptions are created per tracked order via Watch.
func (c *CompositionRoot) CreateTrackingPoller(logger *slog.Logger, interval time.Duration) (*tracking.Poller, error) {
	fetcher := tracking.NewQueryFetcher(c.CreateGetOrderQueryHandler())
	return tracking.NewPoller(logger, fetcher, interval)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
