package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	financeapp "github.com/warungin/backend/internal/application/finance"
	"github.com/warungin/backend/internal/interfaces/http/middleware"
)

// FinanceHandler exposes the receivables and payment endpoints
type FinanceHandler struct {
	BaseHandler
	creditService *financeapp.CreditService
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(creditService *financeapp.CreditService) *FinanceHandler {
	return &FinanceHandler{creditService: creditService}
}

// ListReceivables returns receivables matching the filter, paginated
func (h *FinanceHandler) ListReceivables(c *gin.Context) {
	var filter financeapp.ReceivableListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid receivable filter: "+err.Error())
		return
	}

	receivables, total, err := h.creditService.ListReceivables(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, receivables, total, filter.Page, filter.PageSize)
}

// GetReceivable returns one receivable with its payment trail
func (h *FinanceHandler) GetReceivable(c *gin.Context) {
	receivableID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid receivable ID format")
		return
	}

	receivable, err := h.creditService.GetReceivable(c.Request.Context(), receivableID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, receivable)
}

// CreatePayment records a payment against a receivable and decrements the
// warung's debt
func (h *FinanceHandler) CreatePayment(c *gin.Context) {
	verifiedBy, ok := middleware.GetUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req financeapp.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid payment payload: "+err.Error())
		return
	}

	receivable, err := h.creditService.CreatePayment(c.Request.Context(), verifiedBy, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, receivable)
}

// ReceivableAging returns outstanding balances bucketed by days past due
func (h *FinanceHandler) ReceivableAging(c *gin.Context) {
	report, err := h.creditService.ReceivableAging(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, report)
}

// WarungCreditStatus returns one warung's live credit position
func (h *FinanceHandler) WarungCreditStatus(c *gin.Context) {
	warungID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid warung ID format")
		return
	}

	status, err := h.creditService.WarungCreditStatus(c.Request.Context(), warungID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, status)
}

// RefreshOverdue runs the overdue sweep on demand
func (h *FinanceHandler) RefreshOverdue(c *gin.Context) {
	result, err := h.creditService.RefreshOverdue(c.Request.Context(), time.Now())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
