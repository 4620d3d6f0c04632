// Package http exposes the application over two surfaces: the messaging
// gateway webhook that feeds the conversation manager, and a JSON API used
// by the courier app and the admin tooling.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"shopbot/internal/core/application/conversation"
	"shopbot/internal/core/application/usecases/commands"
	"shopbot/internal/core/application/usecases/queries"
	"shopbot/internal/core/domain/model/kernel"
	"shopbot/internal/core/domain/services"
	"shopbot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	manager *conversation.Manager

	// Command handlers
	acceptOrderHandler   commands.AcceptOrderCommandHandler
	deliverOrderHandler  commands.DeliverOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	addCourierHandler    commands.AddCourierCommandHandler
	removeCourierHandler commands.RemoveCourierCommandHandler

	// Query handlers
	getDispatchQueueHandler queries.GetDispatchQueueQueryHandler
	getCourierStatsHandler  queries.GetCourierStatsQueryHandler
	getAllCouriersHandler   queries.GetAllCouriersQueryHandler
	getCourierRatingHandler queries.GetCourierRatingQueryHandler

	now func() time.Time
}

// NewServer creates a new HTTP server with the required dependencies.
func NewServer(
	manager *conversation.Manager,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addCourierHandler commands.AddCourierCommandHandler,
	removeCourierHandler commands.RemoveCourierCommandHandler,
	getDispatchQueueHandler queries.GetDispatchQueueQueryHandler,
	getCourierStatsHandler queries.GetCourierStatsQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
	getCourierRatingHandler queries.GetCourierRatingQueryHandler,
) *Server {
	return &Server{
		manager:                 manager,
		acceptOrderHandler:      acceptOrderHandler,
		deliverOrderHandler:     deliverOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		addCourierHandler:       addCourierHandler,
		removeCourierHandler:    removeCourierHandler,
		getDispatchQueueHandler: getDispatchQueueHandler,
		getCourierStatsHandler:  getCourierStatsHandler,
		getAllCouriersHandler:   getAllCouriersHandler,
		getCourierRatingHandler: getCourierRatingHandler,
		now:                     time.Now,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/events", s.HandleChatEvent)

	api.GET("/dispatch-queue", s.GetDispatchQueue)
	api.POST("/orders/accept", s.AcceptOrder)
	api.POST("/orders/deliver", s.DeliverOrder)
	api.POST("/orders/cancel", s.CancelOrder)

	api.GET("/couriers", s.GetCouriers)
	api.POST("/couriers", s.AddCourier)
	api.DELETE("/couriers/:id", s.RemoveCourier)
	api.GET("/couriers/:id/stats", s.GetCourierStats)
	api.GET("/couriers/:id/rating", s.GetCourierRating)
	api.GET("/stats", s.GetStats)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP statuses: conflicts are 409,
// unknown objects 404, validation failures 400, the rest 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: err.Error()})
}

type chatEventRequest struct {
	UserID int64    `json:"user_id"`
	Type   string   `json:"type"`
	Text   string   `json:"text,omitempty"`
	Option string   `json:"option,omitempty"`
	Lat    *float64 `json:"lat,omitempty"`
	Lon    *float64 `json:"lon,omitempty"`
}

type chatReplyResponse struct {
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
}

// HandleChatEvent handles POST /api/v1/events - the messaging gateway
// webhook. Each event advances the sender's dialog one step and returns the
// reply to render.
func (s *Server) HandleChatEvent(ctx echo.Context) error {
	var req chatEventRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.UserID <= 0 {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "user_id is required",
		})
	}

	event, err := eventFromRequest(req)
	if err != nil {
		return writeError(ctx, err)
	}

	reply, err := s.manager.Advance(ctx.Request().Context(), req.UserID, event)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, chatReplyResponse{Text: reply.Text, Options: reply.Options})
}

func eventFromRequest(req chatEventRequest) (conversation.Event, error) {
	switch req.Type {
	case "text":
		return conversation.NewTextEvent(req.Text), nil
	case "option":
		return conversation.NewOptionEvent(req.Option), nil
	case "location":
		if req.Lat == nil || req.Lon == nil {
			return conversation.Event{}, errs.NewValueIsRequiredError("lat")
		}
		point, err := kernel.NewGeoPoint(*req.Lat, *req.Lon)
		if err != nil {
			return conversation.Event{}, err
		}
		return conversation.NewLocationEvent(point), nil
	case "cancel":
		return conversation.NewCancelEvent(), nil
	default:
		return conversation.Event{}, errs.NewValueIsInvalidError("type")
	}
}

type dispatchQueueEntry struct {
	UserID      int64     `json:"user_id"`
	OrderID     string    `json:"order_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Total       int64     `json:"total"`
	Destination string    `json:"destination"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetDispatchQueue handles GET /api/v1/dispatch-queue - the pending orders
// awaiting a courier, oldest first.
func (s *Server) GetDispatchQueue(ctx echo.Context) error {
	entries, err := s.getDispatchQueueHandler.Handle(ctx.Request().Context(), queries.NewGetDispatchQueueQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]dispatchQueueEntry, len(entries))
	for i, entry := range entries {
		response[i] = dispatchQueueEntry{
			UserID:      entry.UserID,
			OrderID:     entry.OrderID,
			ProductName: entry.ProductName,
			Quantity:    entry.Quantity,
			Total:       entry.Total,
			Destination: entry.Destination,
			Comment:     entry.Comment,
			CreatedAt:   entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type acceptOrderRequest struct {
	UserID    int64  `json:"user_id"`
	OrderID   string `json:"order_id"`
	CourierID int64  `json:"courier_id"`
}

// AcceptOrder handles POST /api/v1/orders/accept - a courier claims a
// pending order. Losing a race for the order returns 409.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	var req acceptOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAcceptOrderCommand(req.UserID, req.OrderID, req.CourierID, s.now())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type deliverOrderRequest struct {
	UserID    int64  `json:"user_id"`
	OrderID   string `json:"order_id"`
	CourierID int64  `json:"courier_id"`
}

// DeliverOrder handles POST /api/v1/orders/deliver - the claiming courier
// marks the order handed over. The commission freezes at this moment.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	var req deliverOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewDeliverOrderCommand(req.UserID, req.OrderID, req.CourierID, s.now())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type cancelOrderRequest struct {
	UserID  int64  `json:"user_id"`
	OrderID string `json:"order_id"`
}

// CancelOrder handles POST /api/v1/orders/cancel - the customer abandons a
// still-pending order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	var req cancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(req.UserID, req.OrderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type courierResponse struct {
	ID          int64     `json:"id"`
	Handle      string    `json:"handle"`
	OnboardedAt time.Time `json:"onboarded_at"`
	OnboardedBy int64     `json:"onboarded_by"`
}

// GetCouriers handles GET /api/v1/couriers - the courier directory.
func (s *Server) GetCouriers(ctx echo.Context) error {
	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]courierResponse, len(couriers))
	for i, c := range couriers {
		response[i] = courierResponse{
			ID:          c.ID,
			Handle:      c.Handle,
			OnboardedAt: c.OnboardedAt,
			OnboardedBy: c.OnboardedBy,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type addCourierRequest struct {
	ID          int64  `json:"id"`
	Handle      string `json:"handle"`
	OnboardedBy int64  `json:"onboarded_by"`
}

// AddCourier handles POST /api/v1/couriers - an admin onboards a courier.
func (s *Server) AddCourier(ctx echo.Context) error {
	var req addCourierRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddCourierCommand(req.ID, req.Handle, req.OnboardedBy, s.now())
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.addCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveCourier handles DELETE /api/v1/couriers/:id - an admin takes a
// courier out of the directory. Past deliveries keep their courier id.
func (s *Server) RemoveCourier(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier id",
		})
	}

	cmd, err := commands.NewRemoveCourierCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.removeCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type statsOrderResponse struct {
	UserID      int64     `json:"user_id"`
	OrderID     string    `json:"order_id"`
	ProductName string    `json:"product_name"`
	Total       int64     `json:"total"`
	Commission  int64     `json:"commission"`
	DeliveredAt time.Time `json:"delivered_at"`
}

type courierStatsResponse struct {
	CourierID       int64                `json:"courier_id"`
	Count           int                  `json:"count"`
	TotalSales      int64                `json:"total_sales"`
	TotalCommission int64                `json:"total_commission"`
	Orders          []statsOrderResponse `json:"orders,omitempty"`
}

// GetCourierStats handles GET /api/v1/couriers/:id/stats - the sales report
// for one courier. Optional day, from and to query parameters narrow the
// period.
func (s *Server) GetCourierStats(ctx echo.Context) error {
	courierID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier id",
		})
	}

	return s.respondStats(ctx, courierID)
}

// GetStats handles GET /api/v1/stats - all couriers ranked by sales.
func (s *Server) GetStats(ctx echo.Context) error {
	return s.respondStats(ctx, 0)
}

func (s *Server) respondStats(ctx echo.Context, courierID int64) error {
	filter, err := filterFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCourierStatsQuery(courierID, filter)
	if err != nil {
		return writeError(ctx, err)
	}

	stats, err := s.getCourierStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]courierStatsResponse, len(stats))
	for i, stat := range stats {
		orders := make([]statsOrderResponse, len(stat.Orders))
		for j, o := range stat.Orders {
			orders[j] = statsOrderResponse{
				UserID:      o.UserID,
				OrderID:     o.OrderID,
				ProductName: o.ProductName,
				Total:       o.Total,
				Commission:  o.Commission,
				DeliveredAt: o.DeliveredAt,
			}
		}
		response[i] = courierStatsResponse{
			CourierID:       stat.CourierID,
			Count:           stat.Count,
			TotalSales:      stat.TotalSales,
			TotalCommission: stat.TotalCommission,
			Orders:          orders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// filterFromRequest parses the optional day, from and to query parameters.
// Dates use the 2006-01-02 layout.
func filterFromRequest(ctx echo.Context) (services.DateFilter, error) {
	var filter services.DateFilter

	if day := ctx.QueryParam("day"); day != "" {
		parsed, err := time.Parse("2006-01-02", day)
		if err != nil {
			return services.DateFilter{}, errs.NewValueIsInvalidErrorWithCause("day", err)
		}
		filter.Day = parsed
		return filter, nil
	}

	if from := ctx.QueryParam("from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return services.DateFilter{}, errs.NewValueIsInvalidErrorWithCause("from", err)
		}
		filter.Start = parsed
	}

	if to := ctx.QueryParam("to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return services.DateFilter{}, errs.NewValueIsInvalidErrorWithCause("to", err)
		}
		// Include the whole closing day.
		filter.End = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	return filter, nil
}

type courierRatingResponse struct {
	CourierID int64   `json:"courier_id"`
	Count     int     `json:"count"`
	Average   float64 `json:"average"`
}

// GetCourierRating handles GET /api/v1/couriers/:id/rating - the courier's
// average customer rating.
func (s *Server) GetCourierRating(ctx echo.Context) error {
	courierID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier id",
		})
	}

	query, err := queries.NewGetCourierRatingQuery(courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	rating, err := s.getCourierRatingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courierRatingResponse{
		CourierID: rating.CourierID,
		Count:     rating.Count,
		Average:   rating.Average,
	})
}
