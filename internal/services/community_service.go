package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/repository"
	"github.com/agrovia/partnership-api/internal/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrCreatorNotFound        = errors.New("creator user not found")
	ErrNegativeFee            = errors.New("fee cannot be negative")
	ErrInvalidMaxParticipants = errors.New("max participants must be positive")
)

// CommunityService provides business logic for community events.
type CommunityService struct {
	eventRepo repository.CommunityEventRepository
	userRepo  repository.UserRepository
}

// NewCommunityService creates a new CommunityService.
func NewCommunityService(eventRepo repository.CommunityEventRepository, userRepo repository.UserRepository) *CommunityService {
	return &CommunityService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

// CreateCommunityEventInput represents parameters to create a new event.
type CreateCommunityEventInput struct {
	Title           string
	Description     string
	EventType       models.EventType
	EventDate       time.Time
	Location        string
	Fee             decimal.Decimal
	MaxParticipants *int
	CreatedBy       uint64
}

// CreateCommunityEvent validates the creator reference and creates the event
// active with zero participants.
func (s *CommunityService) CreateCommunityEvent(input CreateCommunityEventInput) (*models.CommunityEvent, error) {
	if input.Fee.IsNegative() {
		return nil, ErrNegativeFee
	}
	if input.MaxParticipants != nil && *input.MaxParticipants <= 0 {
		return nil, ErrInvalidMaxParticipants
	}

	if _, err := s.userRepo.FindByID(input.CreatedBy); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCreatorNotFound
		}
		return nil, fmt.Errorf("failed to find creator: %w", err)
	}

	event := &models.CommunityEvent{
		Title:               input.Title,
		Description:         input.Description,
		EventType:           input.EventType,
		EventDate:           input.EventDate,
		Location:            input.Location,
		Fee:                 input.Fee,
		MaxParticipants:     input.MaxParticipants,
		CurrentParticipants: 0,
		IsActive:            true,
		CreatedBy:           input.CreatedBy,
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create community event: %w", err)
	}

	return event, nil
}

// ListActiveEvents lists active events, latest event date first.
func (s *CommunityService) ListActiveEvents(params utils.PaginationParams) ([]models.CommunityEvent, int64, error) {
	events, total, err := s.eventRepo.ListActive(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list community events: %w", err)
	}
	return events, total, nil
}
