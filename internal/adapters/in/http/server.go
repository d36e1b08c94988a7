// Package http exposes the ordering workflow over REST. Handlers translate
// between JSON payloads and application commands and queries; all business
// rules live below this layer.
package http

import (
	"errors"
	"net/http"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartItemHandler     commands.AddCartItemCommandHandler
	setCartQuantityHandler commands.SetCartItemQuantityCommandHandler
	removeCartItemHandler  commands.RemoveCartItemCommandHandler
	submitOrderHandler     commands.SubmitOrderCommandHandler
	assignAgentHandler     commands.AssignAgentCommandHandler
	advanceTaskHandler     commands.AdvanceTaskCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler

	// Query handlers
	getCartHandler           queries.GetCartQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	getPendingOrdersHandler  queries.GetPendingOrdersQueryHandler
	getAgentTasksHandler     queries.GetAgentTasksQueryHandler
	getInvoiceHandler        queries.GetInvoiceQueryHandler
	exportOrdersHandler      queries.ExportOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	setCartQuantityHandler commands.SetCartItemQuantityCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	assignAgentHandler commands.AssignAgentCommandHandler,
	advanceTaskHandler commands.AdvanceTaskCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getAgentTasksHandler queries.GetAgentTasksQueryHandler,
	getInvoiceHandler queries.GetInvoiceQueryHandler,
	exportOrdersHandler queries.ExportOrdersQueryHandler,
) *Server {
	return &Server{
		addCartItemHandler:       addCartItemHandler,
		setCartQuantityHandler:   setCartQuantityHandler,
		removeCartItemHandler:    removeCartItemHandler,
		submitOrderHandler:       submitOrderHandler,
		assignAgentHandler:       assignAgentHandler,
		advanceTaskHandler:       advanceTaskHandler,
		cancelOrderHandler:       cancelOrderHandler,
		getCartHandler:           getCartHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		getPendingOrdersHandler:  getPendingOrdersHandler,
		getAgentTasksHandler:     getAgentTasksHandler,
		getInvoiceHandler:        getInvoiceHandler,
		exportOrdersHandler:      exportOrdersHandler,
	}
}

// RegisterRoutes binds every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")

	api.GET("/cart/:customerId", s.GetCart)
	api.POST("/cart/:customerId/items", s.AddCartItem)
	api.PUT("/cart/:customerId/items/:productId", s.SetCartItemQuantity)
	api.DELETE("/cart/:customerId/items/:productId", s.RemoveCartItem)

	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders/new", s.GetPendingOrders)
	api.GET("/orders/export", s.ExportOrders)
	api.POST("/orders/assign", s.AssignAgent)
	api.GET("/orders/customer/:customerId", s.GetCustomerOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.GET("/orders/:orderId/invoice", s.GetInvoice)

	api.GET("/delivery/tasks/:agentId", s.GetAgentTasks)
	api.PUT("/delivery/task/:taskId", s.AdvanceTask)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetCart handles GET /api/cart/:customerId.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(ctx.Param("customerId"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

type addCartItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	ImageRef  string  `json:"imageRef"`
	Quantity  int     `json:"quantity"`
}

// AddCartItem handles POST /api/cart/:customerId/items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req addCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddCartItemCommand(
		ctx.Param("customerId"), req.ProductID, req.Name,
		req.UnitPrice, req.ImageRef, req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetCartItemQuantity handles PUT /api/cart/:customerId/items/:productId.
// A non-positive quantity removes the line.
func (s *Server) SetCartItemQuantity(ctx echo.Context) error {
	var req setQuantityRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetCartItemQuantityCommand(
		ctx.Param("customerId"), ctx.Param("productId"), req.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.setCartQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/cart/:customerId/items/:productId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	cmd, err := commands.NewRemoveCartItemCommand(
		ctx.Param("customerId"), ctx.Param("productId"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type submitOrderRequest struct {
	CustomerID      string   `json:"customer_id"`
	DeliveryAddress string   `json:"delivery_address"`
	PaymentMethod   string   `json:"payment_method"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

type submitOrderResponse struct {
	OrderID string `json:"order_id"`
}

// SubmitOrder handles POST /api/orders. The cart contents become the order;
// the client never sends prices or totals. Checkout coordinates are optional
// and skip the address geocoder when present.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req submitOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	location, err := clientLocation(req.Latitude, req.Longitude)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOrderCommand(
		orderID, req.CustomerID, req.DeliveryAddress, req.PaymentMethod, location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, submitOrderResponse{OrderID: orderID.String()})
}

// clientLocation builds the optional checkout point from request coordinates.
// Sending one coordinate without the other is a client error.
func clientLocation(latitude, longitude *float64) (*kernel.GeoPoint, error) {
	switch {
	case latitude == nil && longitude == nil:
		return nil, nil
	case latitude == nil || longitude == nil:
		return nil, errs.NewValueIsRequiredError("latitude and longitude")
	}

	point, err := kernel.NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

// GetOrder handles GET /api/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerOrders handles GET /api/orders/customer/:customerId.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	query, err := queries.NewGetCustomerOrdersQuery(ctx.Param("customerId"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingOrders handles GET /api/orders/new.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	response, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ExportOrders handles GET /api/orders/export, streaming a spreadsheet of all
// orders.
func (s *Server) ExportOrders(ctx echo.Context) error {
	query := queries.NewExportOrdersQuery()

	file, err := s.exportOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="orders.xlsx"`)
	ctx.Response().WriteHeader(http.StatusOK)

	return file.Write(ctx.Response().Writer)
}

type assignAgentRequest struct {
	OrderID string `json:"order_id"`
	AgentID string `json:"delivery_agent_id"`
}

// AssignAgent handles POST /api/orders/assign.
func (s *Server) AssignAgent(ctx echo.Context) error {
	var req assignAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewAssignAgentCommand(orderID, req.AgentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.assignAgentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetInvoice handles GET /api/orders/:orderId/invoice.
func (s *Server) GetInvoice(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetInvoiceQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	invoice, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	// format=text serves the printable document instead of the data.
	if ctx.QueryParam("format") == "text" {
		return ctx.String(http.StatusOK, invoice.Render())
	}

	return ctx.JSON(http.StatusOK, invoice)
}

// GetAgentTasks handles GET /api/delivery/tasks/:agentId.
func (s *Server) GetAgentTasks(ctx echo.Context) error {
	query, err := queries.NewGetAgentTasksQuery(ctx.Param("agentId"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getAgentTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// AdvanceTask handles PUT /api/delivery/task/:taskId, moving the task to its
// next status.
func (s *Server) AdvanceTask(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("taskId"))
	if err != nil {
		return badRequest(ctx, "invalid task id")
	}

	cmd, err := commands.NewAdvanceTaskCommand(taskID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.advanceTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type errorResponse struct {
	Error string `json:"error"`
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Error: message})
}

// writeError maps domain errors to HTTP statuses. Unrecognized errors become
// an opaque 500 so internals never leak to clients.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError,
			errorResponse{Error: "internal server error"})
	}
}
