package handler

import (
	appordering "github.com/ghiaccio/backend/internal/application/ordering"
	"github.com/ghiaccio/backend/internal/domain/ordering"
	"github.com/ghiaccio/backend/internal/interfaces/http/middleware"
	"github.com/ghiaccio/backend/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	BaseHandler
	orderService *appordering.OrderService
	metrics      *metrics.HTTPMetrics
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *appordering.OrderService, m *metrics.HTTPMetrics) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		metrics:      m,
	}
}

// RegisterRoutes registers the order routes. Submission stays open to
// anonymous callers; everything else needs a live session.
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/submit-order", h.Submit)
	rg.PUT("/update-order/:id", middleware.RequireAuth(), h.Update)
	// Cancellation is a PUT: the row stays, only the status changes
	rg.PUT("/delete-order/:id", middleware.RequireAuth(), h.Cancel)
	rg.GET("/orders", middleware.RequireAuth(), h.List)
	rg.GET("/orders/all", middleware.RequireAdmin(), h.ListAll)
}

// Submit places a new order. Logged-in users own the order directly;
// anonymous callers must supply contact details with a registered phone.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.orderService.Submit(c.Request.Context(), appordering.SubmitInput{
		Quantity:        req.Quantita,
		IceType:         req.Tipologia,
		DeliveryAddress: req.Indirizzo,
		DeliveryDate:    req.Data,
		DeliveryHour:    req.Orario,
		Name:            req.Nome,
		Surname:         req.Cognome,
		Phone:           req.Telefono,
	}, currentActor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordOrderSubmitted(result.IceType)
	}

	h.Created(c, orderResponse(result))
}

// Update amends a pending order owned by the caller
func (h *OrderHandler) Update(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.orderService.Update(c.Request.Context(), orderID, appordering.SubmitInput{
		Quantity:        req.Quantita,
		IceType:         req.Tipologia,
		DeliveryAddress: req.Indirizzo,
		DeliveryDate:    req.Data,
		DeliveryHour:    req.Orario,
	}, currentActor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orderResponse(result))
}

// Cancel marks a pending order cancelled
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	result, err := h.orderService.Cancel(c.Request.Context(), orderID, currentActor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orderResponse(result))
}

// List returns the caller's own orders
func (h *OrderHandler) List(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	results, err := h.orderService.List(c.Request.Context(), currentActor(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orderResponses(results))
}

// ListAll returns every order, for administrator views
func (h *OrderHandler) ListAll(c *gin.Context) {
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	results, err := h.orderService.ListAll(c.Request.Context(), currentActor(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, orderResponses(results))
}

func (h *OrderHandler) orderID(c *gin.Context) (uuid.UUID, bool) {
	idParam := c.Param("id")
	orderID, err := uuid.Parse(idParam)
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return uuid.Nil, false
	}
	return orderID, true
}

func (h *OrderHandler) listFilter(c *gin.Context) (ordering.Filter, bool) {
	var req OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return ordering.Filter{}, false
	}

	filter := ordering.NewFilter()
	if req.Sort != "" {
		order := req.Order
		if order == "" {
			order = "asc"
		}
		filter = filter.WithSorting(req.Sort, order)
	}
	if req.Stato != "" {
		status := ordering.OrderStatus(req.Stato)
		if !status.IsValid() {
			h.BadRequest(c, "Unknown order status")
			return ordering.Filter{}, false
		}
		filter = filter.WithStatus(status)
	}
	if req.Tipologia != "" {
		filter = filter.WithIceType(ordering.IceType(req.Tipologia))
	}
	filter.IncludeCancelled = req.IncludeCancelled

	return filter, true
}

// currentActor builds the acting identity from the resolved session
func currentActor(c *gin.Context) appordering.Actor {
	return appordering.Actor{
		UserID: middleware.GetSessionUserID(c),
		Role:   middleware.GetSessionRole(c),
	}
}

func orderResponse(r *appordering.OrderResult) OrderResponse {
	return OrderResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		Quantita:        r.Quantity,
		Tipologia:       r.IceType,
		Indirizzo:       r.DeliveryAddress,
		Data:            r.DeliveryDate,
		Orario:          r.DeliveryHour,
		DataRichiesta:   r.RequestDate,
		OrarioRichiesta: r.RequestHour,
		Stato:           r.Status,
	}
}

func orderResponses(results []appordering.OrderResult) []OrderResponse {
	responses := make([]OrderResponse, len(results))
	for i := range results {
		responses[i] = orderResponse(&results[i])
	}
	return responses
}
