package http

import (
	"errors"
	"net/http"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server exposes the fulfillment use cases over HTTP.
// It coordinates between echo handlers and application use cases; all domain
// decisions stay behind the command and query handlers.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	confirmPickupHandler   commands.ConfirmPickupCommandHandler
	verifyTagHandler       commands.VerifyTagCommandHandler
	startProcessingHandler commands.StartProcessingCommandHandler
	advanceStageHandler    commands.AdvanceStageCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	assignStaffHandler     commands.AssignStaffCommandHandler

	getStaffOrdersHandler   queries.GetStaffOrdersQueryHandler
	getOrderProgressHandler queries.GetOrderProgressQueryHandler
	getOrderStatsHandler    queries.GetOrderStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmPickupHandler commands.ConfirmPickupCommandHandler,
	verifyTagHandler commands.VerifyTagCommandHandler,
	startProcessingHandler commands.StartProcessingCommandHandler,
	advanceStageHandler commands.AdvanceStageCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignStaffHandler commands.AssignStaffCommandHandler,
	getStaffOrdersHandler queries.GetStaffOrdersQueryHandler,
	getOrderProgressHandler queries.GetOrderProgressQueryHandler,
	getOrderStatsHandler queries.GetOrderStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		confirmPickupHandler:    confirmPickupHandler,
		verifyTagHandler:        verifyTagHandler,
		startProcessingHandler:  startProcessingHandler,
		advanceStageHandler:     advanceStageHandler,
		cancelOrderHandler:      cancelOrderHandler,
		assignStaffHandler:      assignStaffHandler,
		getStaffOrdersHandler:   getStaffOrdersHandler,
		getOrderProgressHandler: getOrderProgressHandler,
		getOrderStatsHandler:    getOrderStatsHandler,
	}
}

// RegisterRoutes attaches all fulfillment routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/confirm-pickup", s.ConfirmPickup)
	api.POST("/orders/:id/start", s.StartProcessing)
	api.POST("/orders/:id/advance", s.AdvanceStage)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/assign", s.AssignStaff)
	api.POST("/tags/:id/verify", s.VerifyTag)

	api.GET("/orders/stats", s.GetOrderStats)
	api.GET("/orders/:id/progress", s.GetOrderProgress)
	api.GET("/staff/:id/orders", s.GetStaffOrders)

	e.GET("/health", s.Health)
}

// Error is the JSON payload returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrderItem is one service line of an incoming order.
type NewOrderItem struct {
	ServiceID       string          `json:"service_id"`
	Quantity        int             `json:"quantity"`
	IndividualItems []string        `json:"individual_items"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// NewOrder is the request body for order intake.
type NewOrder struct {
	OrderCode         string         `json:"order_code"`
	CustomerID        string         `json:"customer_id"`
	Items             []NewOrderItem `json:"items"`
	PickupDate        *time.Time     `json:"pickup_date,omitempty"`
	EstimatedDelivery *time.Time     `json:"estimated_delivery,omitempty"`
}

// OrderCreated is the intake response carrying the server-minted order ID.
type OrderCreated struct {
	OrderID string `json:"order_id"`
}

// CreateOrder handles POST /api/v1/orders - registers a new laundry order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(newOrder.CustomerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid customer ID: "+err.Error())
	}

	items := make([]commands.ItemInput, 0, len(newOrder.Items))
	for _, item := range newOrder.Items {
		items = append(items, commands.ItemInput{
			ServiceID:       item.ServiceID,
			Quantity:        item.Quantity,
			IndividualItems: item.IndividualItems,
			UnitPrice:       item.UnitPrice,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, newOrder.OrderCode, customerID, items,
		newOrder.PickupDate, newOrder.EstimatedDelivery)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{OrderID: orderID.String()})
}

// ConfirmPickup handles POST /api/v1/orders/:id/confirm-pickup.
func (s *Server) ConfirmPickup(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	cmd, err := commands.NewConfirmPickupCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.confirmPickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyTagRequest carries the optional notes recorded at verification time.
type VerifyTagRequest struct {
	Notes string `json:"notes"`
}

// VerifyTag handles POST /api/v1/tags/:id/verify - marks one garment tag verified.
func (s *Server) VerifyTag(ctx echo.Context) error {
	var request VerifyTagRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewVerifyTagCommand(ctx.Param("id"), request.Notes)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.verifyTagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartProcessing handles POST /api/v1/orders/:id/start.
// Fails with 422 while any verification tag is still pending.
func (s *Server) StartProcessing(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	cmd, err := commands.NewStartProcessingCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.startProcessingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceStageRequest carries the optional stage notes, e.g. "delicate cycle".
type AdvanceStageRequest struct {
	Notes string `json:"notes"`
}

// AdvanceStage handles POST /api/v1/orders/:id/advance - moves the order one
// stage forward through the catalog.
func (s *Server) AdvanceStage(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var request AdvanceStageRequest
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAdvanceStageCommand(orderID, request.Notes)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.advanceStageHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignStaffRequest names the staff member the order is handed to.
type AssignStaffRequest struct {
	StaffID string `json:"staff_id"`
}

// AssignStaff handles POST /api/v1/orders/:id/assign - hands the order to a
// staff member, overwriting any previous assignment.
func (s *Server) AssignStaff(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	var request AssignStaffRequest
	if err = ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	staffID, err := kernel.UUIDFromString(request.StaffID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid staff ID: "+err.Error())
	}

	cmd, err := commands.NewAssignStaffCommand(orderID, staffID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.assignStaffHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StaffOrder is one entry of a staff member's work queue.
type StaffOrder struct {
	ID                string          `json:"id"`
	OrderCode         string          `json:"order_code"`
	Status            string          `json:"status"`
	CurrentStage      string          `json:"current_stage"`
	ItemCount         int             `json:"item_count"`
	Amount            decimal.Decimal `json:"amount"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
}

// GetStaffOrders handles GET /api/v1/staff/:id/orders - the staff work queue,
// deepest stage first.
func (s *Server) GetStaffOrders(ctx echo.Context) error {
	staffID, err := pathUUID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid staff ID")
	}

	query, err := queries.NewGetStaffOrdersQuery(staffID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	orders, err := s.getStaffOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := make([]StaffOrder, len(orders))
	for i, o := range orders {
		response[i] = StaffOrder{
			ID:                o.ID.String(),
			OrderCode:         o.OrderCode,
			Status:            o.Status.String(),
			CurrentStage:      o.CurrentStage.String(),
			ItemCount:         o.ItemCount,
			Amount:            o.Amount,
			EstimatedDelivery: o.EstimatedDelivery,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TimelineStep is one rendered entry of the customer-facing timeline.
type TimelineStep struct {
	Stage     string     `json:"stage"`
	Completed bool       `json:"completed"`
	Current   bool       `json:"current"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// OrderProgress is the customer-facing progress view of one order.
type OrderProgress struct {
	OrderID      string         `json:"order_id"`
	OrderCode    string         `json:"order_code"`
	Status       string         `json:"status"`
	CurrentStage string         `json:"current_stage"`
	Percent      int            `json:"percent"`
	Timeline     []TimelineStep `json:"timeline"`
}

// GetOrderProgress handles GET /api/v1/orders/:id/progress.
func (s *Server) GetOrderProgress(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
	}

	query, err := queries.NewGetOrderProgressQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	progress, err := s.getOrderProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	timeline := make([]TimelineStep, len(progress.Timeline))
	for i, step := range progress.Timeline {
		timeline[i] = TimelineStep{
			Stage:     step.Stage.String(),
			Completed: step.Completed,
			Current:   step.Current,
			Timestamp: step.Timestamp,
			Notes:     step.Notes,
		}
	}

	return ctx.JSON(http.StatusOK, OrderProgress{
		OrderID:      progress.OrderID.String(),
		OrderCode:    progress.OrderCode,
		Status:       progress.Status.String(),
		CurrentStage: progress.CurrentStage.String(),
		Percent:      progress.Percent,
		Timeline:     timeline,
	})
}

// OrderStats is the dashboard breakdown of the order book.
type OrderStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	ByStage  map[string]int `json:"by_stage"`
}

// GetOrderStats handles GET /api/v1/orders/stats.
func (s *Server) GetOrderStats(ctx echo.Context) error {
	query := queries.NewGetOrderStatsQuery()

	stats, err := s.getOrderStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderStats{
		Total:    stats.Total,
		ByStatus: stats.ByStatus,
		ByStage:  stats.ByStage,
	})
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// pathUUID parses the :id path parameter as a kernel UUID.
func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// commandError maps a use case failure to the HTTP status contract:
// unknown objects are 404, lost races and illegal stage moves are 409,
// failed business preconditions are 422, bad input is 400.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrConcurrentModification):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrPreconditionFailed),
		errors.Is(err, errs.ErrInvalidAssignee):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
