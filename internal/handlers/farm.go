package handlers

import (
	"net/http"
	"time"

	"github.com/agrovia/partnership-api/internal/dto"
	apierrors "github.com/agrovia/partnership-api/internal/errors"
	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FarmHandler coordinates farm plot and activity HTTP handlers.
type FarmHandler struct {
	farmService *services.FarmService
}

// NewFarmHandler creates a new FarmHandler.
func NewFarmHandler(farmService *services.FarmService) *FarmHandler {
	return &FarmHandler{
		farmService: farmService,
	}
}

// CreateFarmPlot registers a new plot under a partnership.
func (h *FarmHandler) CreateFarmPlot(c *gin.Context) {
	type CreateFarmPlotRequest struct {
		PartnershipID       uint64          `json:"partnership_id" binding:"required"`
		PlotName            string          `json:"plot_name" binding:"required"`
		LocationCoordinates string          `json:"location_coordinates" binding:"required"`
		AreaHectares        decimal.Decimal `json:"area_hectares"`
		SoilType            *string         `json:"soil_type"`
	}

	var req CreateFarmPlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	plot, err := h.farmService.CreateFarmPlot(services.CreateFarmPlotInput{
		PartnershipID:       req.PartnershipID,
		PlotName:            req.PlotName,
		LocationCoordinates: req.LocationCoordinates,
		AreaHectares:        req.AreaHectares,
		SoilType:            req.SoilType,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plot)
}

// CreateFarmActivity logs an activity on a plot.
func (h *FarmHandler) CreateFarmActivity(c *gin.Context) {
	type CreateFarmActivityRequest struct {
		FarmPlotID   uint64              `json:"farm_plot_id" binding:"required"`
		ActivityType models.ActivityType `json:"activity_type" binding:"required,oneof=planting fertilizing watering pest_control harvesting other"`
		Description  string              `json:"description" binding:"required"`
		ActivityDate time.Time           `json:"activity_date" binding:"required"`
		Photos       []string            `json:"photos"`
		Videos       []string            `json:"videos"`
		CreatedBy    uint64              `json:"created_by" binding:"required"`
	}

	var req CreateFarmActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	activity, err := h.farmService.CreateFarmActivity(services.CreateFarmActivityInput{
		FarmPlotID:   req.FarmPlotID,
		ActivityType: req.ActivityType,
		Description:  req.Description,
		ActivityDate: req.ActivityDate,
		Photos:       req.Photos,
		Videos:       req.Videos,
		CreatedBy:    req.CreatedBy,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToFarmActivityDTO(*activity))
}

// GetFarmActivities lists a plot's activities, most recent activity date first.
func (h *FarmHandler) GetFarmActivities(c *gin.Context) {
	farmPlotID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	activities, err := h.farmService.ListFarmActivities(farmPlotID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activities": dto.ToFarmActivityDTOs(activities),
	})
}
