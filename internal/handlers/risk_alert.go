package handlers

import (
	"net/http"
	"strconv"
	"time"

	apierrors "github.com/agrovia/partnership-api/internal/errors"
	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/services"
	"github.com/gin-gonic/gin"
)

// RiskAlertHandler coordinates risk alert HTTP handlers.
type RiskAlertHandler struct {
	riskService *services.RiskService
}

// NewRiskAlertHandler creates a new RiskAlertHandler.
func NewRiskAlertHandler(riskService *services.RiskService) *RiskAlertHandler {
	return &RiskAlertHandler{
		riskService: riskService,
	}
}

// CreateRiskAlert raises an alert on a farm plot.
func (h *RiskAlertHandler) CreateRiskAlert(c *gin.Context) {
	type CreateRiskAlertRequest struct {
		FarmPlotID    uint64          `json:"farm_plot_id" binding:"required"`
		RiskType      models.RiskType `json:"risk_type" binding:"required,oneof=weather pest disease flood drought other"`
		SeverityLevel int             `json:"severity_level" binding:"required,min=1,max=5"`
		Title         string          `json:"title" binding:"required"`
		Description   string          `json:"description" binding:"required"`
		AlertDate     time.Time       `json:"alert_date" binding:"required"`
	}

	var req CreateRiskAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	alert, err := h.riskService.CreateRiskAlert(services.CreateRiskAlertInput{
		FarmPlotID:    req.FarmPlotID,
		RiskType:      req.RiskType,
		SeverityLevel: req.SeverityLevel,
		Title:         req.Title,
		Description:   req.Description,
		AlertDate:     req.AlertDate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, alert)
}

// GetRiskAlerts lists alerts ordered by severity then recency, optionally
// filtered by farm_plot_id.
func (h *RiskAlertHandler) GetRiskAlerts(c *gin.Context) {
	var farmPlotID *uint64
	if raw := c.Query("farm_plot_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid farm_plot_id")
			return
		}
		farmPlotID = &id
	}

	alerts, err := h.riskService.ListRiskAlerts(farmPlotID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"risk_alerts": alerts,
	})
}
