package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/agrovia/partnership-api/internal/errors"
	"github.com/agrovia/partnership-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InsuranceHandler coordinates insurance policy HTTP handlers.
type InsuranceHandler struct {
	insuranceService *services.InsuranceService
}

// NewInsuranceHandler creates a new InsuranceHandler.
func NewInsuranceHandler(insuranceService *services.InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{
		insuranceService: insuranceService,
	}
}

// CreateInsurancePolicy creates a policy for a partnership.
func (h *InsuranceHandler) CreateInsurancePolicy(c *gin.Context) {
	type CreateInsurancePolicyRequest struct {
		PartnershipID   uint64          `json:"partnership_id" binding:"required"`
		PolicyNumber    string          `json:"policy_number" binding:"required"`
		CoverageAmount  decimal.Decimal `json:"coverage_amount"`
		PremiumAmount   decimal.Decimal `json:"premium_amount"`
		StartDate       time.Time       `json:"start_date" binding:"required"`
		EndDate         time.Time       `json:"end_date" binding:"required"`
		CoverageDetails string          `json:"coverage_details" binding:"required"`
	}

	var req CreateInsurancePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	policy, err := h.insuranceService.CreateInsurancePolicy(services.CreateInsurancePolicyInput{
		PartnershipID:   req.PartnershipID,
		PolicyNumber:    req.PolicyNumber,
		CoverageAmount:  req.CoverageAmount,
		PremiumAmount:   req.PremiumAmount,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		CoverageDetails: req.CoverageDetails,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, policy)
}
