package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	distributionapp "github.com/warungin/backend/internal/application/distribution"
	"github.com/warungin/backend/internal/domain/shared"
	"github.com/warungin/backend/internal/interfaces/http/middleware"
)

// OrderHandler exposes the delivery order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *distributionapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService *distributionapp.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Create places a new PENDING delivery order. An outlet caller always orders
// for its own warung, whatever the payload says.
func (h *OrderHandler) Create(c *gin.Context) {
	var req distributionapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid order payload: "+err.Error())
		return
	}

	if middleware.GetRole(c) == shared.RoleOutlet {
		warungID := middleware.GetWarungID(c)
		if warungID == nil {
			h.Unauthorized(c, "Outlet account is not bound to a warung")
			return
		}
		req.WarungID = *warungID
	}

	order, err := h.orderService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, order)
}

// Get returns one order with its items and delivery task
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.Get(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// List returns orders matching the filter. Outlet callers only ever see
// their own warung's orders.
func (h *OrderHandler) List(c *gin.Context) {
	var filter distributionapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid order filter: "+err.Error())
		return
	}

	orders, total, err := h.orderService.List(
		c.Request.Context(), middleware.GetRole(c), middleware.GetWarungID(c), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

// AssignKurir approves the order and creates its delivery task
func (h *OrderHandler) AssignKurir(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req distributionapp.AssignKurirRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid assignment payload: "+err.Error())
		return
	}

	order, err := h.orderService.AssignKurir(c.Request.Context(), orderID, req.KurirID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// StartDelivery moves the order to IN_TRANSIT. A courier may only start
// its own task; admin and warehouse staff may start any.
func (h *OrderHandler) StartDelivery(c *gin.Context) {
	kurirID, ok := callerKurirID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.StartDelivery(c.Request.Context(), orderID, kurirID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// CompleteDelivery marks the order DELIVERED and credits the warung's own
// stock exactly once. A courier may only complete its own task; admin and
// outlet callers may complete any.
func (h *OrderHandler) CompleteDelivery(c *gin.Context) {
	kurirID, ok := callerKurirID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	// the photo proof body is optional
	var req distributionapp.CompleteDeliveryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, "Invalid completion payload: "+err.Error())
			return
		}
	}

	order, err := h.orderService.CompleteDelivery(c.Request.Context(), orderID, kurirID, req.PhotoProof)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}

// callerKurirID resolves the courier identity to enforce on a task
// transition. Couriers are pinned to their own tasks; every other role
// passes uuid.Nil, which skips the assignment check.
func callerKurirID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, false
	}
	if middleware.GetRole(c) != shared.RoleCourier {
		return uuid.Nil, true
	}
	return userID, true
}

// Cancel aborts an order that has not entered transit
func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	order, err := h.orderService.Cancel(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, order)
}
