package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	distributionapp "github.com/warungin/backend/internal/application/distribution"
	"github.com/warungin/backend/internal/interfaces/http/middleware"
)

// PurchaseOrderHandler exposes the supplier purchase order endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	poService *distributionapp.PurchaseOrderService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(poService *distributionapp.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{poService: poService}
}

// Create registers a new DRAFT purchase order
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req distributionapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid purchase order payload: "+err.Error())
		return
	}

	po, err := h.poService.Create(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, po)
}

// Get returns one purchase order with its items
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	poID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	po, err := h.poService.Get(c.Request.Context(), poID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, po)
}

// Receive marks the purchase order RECEIVED and credits warehouse stock
// exactly once
func (h *PurchaseOrderHandler) Receive(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	poID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID format")
		return
	}

	po, err := h.poService.Receive(c.Request.Context(), actorID, poID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, po)
}
