package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/agrovia/partnership-api/internal/errors"
	"github.com/agrovia/partnership-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PartnershipHandler coordinates partnership and dashboard HTTP handlers.
type PartnershipHandler struct {
	partnershipService *services.PartnershipService
	dashboardService   *services.DashboardService
}

// NewPartnershipHandler creates a new PartnershipHandler.
func NewPartnershipHandler(partnershipService *services.PartnershipService, dashboardService *services.DashboardService) *PartnershipHandler {
	return &PartnershipHandler{
		partnershipService: partnershipService,
		dashboardService:   dashboardService,
	}
}

// CreatePartnership creates a new partnership for a partner-role user.
func (h *PartnershipHandler) CreatePartnership(c *gin.Context) {
	type CreatePartnershipRequest struct {
		PartnerID        uint64          `json:"partner_id" binding:"required"`
		InvestmentAmount decimal.Decimal `json:"investment_amount"`
		StartDate        time.Time       `json:"start_date" binding:"required"`
		EndDate          time.Time       `json:"end_date" binding:"required"`
		EstimatedReturn  decimal.Decimal `json:"estimated_return"`
	}

	var req CreatePartnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	partnership, err := h.partnershipService.CreatePartnership(services.CreatePartnershipInput{
		PartnerID:        req.PartnerID,
		InvestmentAmount: req.InvestmentAmount,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		EstimatedReturn:  req.EstimatedReturn,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, partnership)
}

// GetPartnerDashboard returns the aggregated dashboard for one partner.
func (h *PartnershipHandler) GetPartnerDashboard(c *gin.Context) {
	partnerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.GetPartnerDashboard(partnerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
