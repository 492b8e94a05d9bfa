package handlers

import (
	"net/http"
	"time"

	apierrors "github.com/agrovia/partnership-api/internal/errors"
	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/services"
	"github.com/agrovia/partnership-api/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CommunityEventHandler coordinates community event HTTP handlers.
type CommunityEventHandler struct {
	communityService *services.CommunityService
}

// NewCommunityEventHandler creates a new CommunityEventHandler.
func NewCommunityEventHandler(communityService *services.CommunityService) *CommunityEventHandler {
	return &CommunityEventHandler{
		communityService: communityService,
	}
}

// CreateCommunityEvent creates a new event.
func (h *CommunityEventHandler) CreateCommunityEvent(c *gin.Context) {
	type CreateCommunityEventRequest struct {
		Title           string          `json:"title" binding:"required"`
		Description     string          `json:"description" binding:"required"`
		EventType       models.EventType `json:"event_type" binding:"required,oneof=farm_visit workshop meeting harvest_celebration other"`
		EventDate       time.Time       `json:"event_date" binding:"required"`
		Location        string          `json:"location" binding:"required"`
		Fee             decimal.Decimal `json:"fee"`
		MaxParticipants *int            `json:"max_participants"`
		CreatedBy       uint64          `json:"created_by" binding:"required"`
	}

	var req CreateCommunityEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	event, err := h.communityService.CreateCommunityEvent(services.CreateCommunityEventInput{
		Title:           req.Title,
		Description:     req.Description,
		EventType:       req.EventType,
		EventDate:       req.EventDate,
		Location:        req.Location,
		Fee:             req.Fee,
		MaxParticipants: req.MaxParticipants,
		CreatedBy:       req.CreatedBy,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// GetCommunityEvents lists active events, latest event date first.
func (h *CommunityEventHandler) GetCommunityEvents(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	events, total, err := h.communityService.ListActiveEvents(params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events": events,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}
