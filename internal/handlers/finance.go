package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/agrovia/partnership-api/internal/errors"
	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FinanceHandler coordinates financial record and summary HTTP handlers.
type FinanceHandler struct {
	financeService *services.FinanceService
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(financeService *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{
		financeService: financeService,
	}
}

// CreateFinancialRecord records an expense against a partnership.
func (h *FinanceHandler) CreateFinancialRecord(c *gin.Context) {
	type CreateFinancialRecordRequest struct {
		PartnershipID   uint64             `json:"partnership_id" binding:"required"`
		ExpenseType     models.ExpenseType `json:"expense_type" binding:"required,oneof=equipment labor land_rental seeds fertilizer insurance other"`
		Amount          decimal.Decimal    `json:"amount"`
		Description     string             `json:"description" binding:"required"`
		TransactionDate time.Time          `json:"transaction_date" binding:"required"`
		ReceiptURL      *string            `json:"receipt_url"`
	}

	var req CreateFinancialRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.financeService.CreateFinancialRecord(services.CreateFinancialRecordInput{
		PartnershipID:   req.PartnershipID,
		ExpenseType:     req.ExpenseType,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
		ReceiptURL:      req.ReceiptURL,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetFinancialSummary returns the expense aggregation and revenue projection
// for a partnership.
func (h *FinanceHandler) GetFinancialSummary(c *gin.Context) {
	partnershipID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.financeService.ComputeFinancialSummary(partnershipID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
