package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrPartnerNotFound       = errors.New("partner not found")
	ErrUserNotPartner        = errors.New("user is not a partner")
	ErrNonPositiveAmount     = errors.New("amount must be positive")
	ErrInvalidDateRange      = errors.New("end date must be after start date")
	ErrPartnershipNotFound   = errors.New("partnership not found")
)

// PartnershipService provides business logic for partnership operations.
type PartnershipService struct {
	partnershipRepo repository.PartnershipRepository
	userRepo        repository.UserRepository
}

// NewPartnershipService creates a new PartnershipService.
func NewPartnershipService(partnershipRepo repository.PartnershipRepository, userRepo repository.UserRepository) *PartnershipService {
	return &PartnershipService{
		partnershipRepo: partnershipRepo,
		userRepo:        userRepo,
	}
}

// CreatePartnershipInput represents parameters to create a new partnership.
type CreatePartnershipInput struct {
	PartnerID        uint64
	InvestmentAmount decimal.Decimal
	StartDate        time.Time
	EndDate          time.Time
	EstimatedReturn  decimal.Decimal
}

// CreatePartnership validates the partner reference and creates the
// partnership with its initial defaults.
func (s *PartnershipService) CreatePartnership(input CreatePartnershipInput) (*models.Partnership, error) {
	if !input.InvestmentAmount.IsPositive() || !input.EstimatedReturn.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, ErrInvalidDateRange
	}

	partner, err := s.userRepo.FindByID(input.PartnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to find partner: %w", err)
	}

	if partner.Role != models.RolePartner {
		return nil, ErrUserNotPartner
	}

	partnership := &models.Partnership{
		PartnerID:        input.PartnerID,
		InvestmentAmount: input.InvestmentAmount,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		EstimatedReturn:  input.EstimatedReturn,
		CurrentProgress:  decimal.Zero,
		CurrentPhase:     models.DefaultPartnershipPhase,
		Status:           models.PartnershipStatusPending,
	}

	if err := s.partnershipRepo.Create(partnership); err != nil {
		return nil, fmt.Errorf("failed to create partnership: %w", err)
	}

	return partnership, nil
}
