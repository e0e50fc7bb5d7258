package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/warungin/backend/internal/application/inventory"
	"github.com/warungin/backend/internal/interfaces/http/middleware"
)

// StockHandler exposes the stock ledger endpoints
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockLedgerService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *inventoryapp.StockLedgerService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// List returns stock balances, optionally filtered by warehouse, product or
// low-stock flag
func (h *StockHandler) List(c *gin.Context) {
	var filter inventoryapp.StockListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid stock filter: "+err.Error())
		return
	}

	stocks, err := h.stockService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stocks)
}

// FindOne returns the balance for one (warehouse, product) pair
func (h *StockHandler) FindOne(c *gin.Context) {
	warehouseID, err := uuid.Parse(c.Param("warehouseId"))
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	stock, err := h.stockService.FindOne(c.Request.Context(), warehouseID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stock)
}

// RecordMovement appends one IN, OUT, TRANSFER or ADJUSTMENT entry to the
// ledger and updates the affected balances
func (h *StockHandler) RecordMovement(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid movement payload: "+err.Error())
		return
	}

	movement, err := h.stockService.RecordMovement(c.Request.Context(), actorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, movement)
}

// PerformOpname reconciles a counted quantity against the ledger balance
func (h *StockHandler) PerformOpname(c *gin.Context) {
	performerID, ok := middleware.GetUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.PerformOpnameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid opname payload: "+err.Error())
		return
	}

	opname, err := h.stockService.PerformOpname(c.Request.Context(), performerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, opname)
}

// History returns ledger entries newest first
func (h *StockHandler) History(c *gin.Context) {
	var filter inventoryapp.MovementHistoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid history filter: "+err.Error())
		return
	}

	movements, err := h.stockService.History(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, movements)
}

// LowStockAlerts returns balances at or below their minimum threshold
func (h *StockHandler) LowStockAlerts(c *gin.Context) {
	stocks, err := h.stockService.LowStockAlerts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stocks)
}

// Valuation returns the total stock value per product at buy price
func (h *StockHandler) Valuation(c *gin.Context) {
	valuation, err := h.stockService.Valuation(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, valuation)
}
