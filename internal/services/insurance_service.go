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

var ErrPolicyNumberTaken = errors.New("policy number already exists")

// InsuranceService provides business logic for insurance policies.
type InsuranceService struct {
	policyRepo      repository.InsurancePolicyRepository
	partnershipRepo repository.PartnershipRepository
}

// NewInsuranceService creates a new InsuranceService.
func NewInsuranceService(policyRepo repository.InsurancePolicyRepository, partnershipRepo repository.PartnershipRepository) *InsuranceService {
	return &InsuranceService{
		policyRepo:      policyRepo,
		partnershipRepo: partnershipRepo,
	}
}

// CreateInsurancePolicyInput represents parameters to create a new policy.
type CreateInsurancePolicyInput struct {
	PartnershipID   uint64
	PolicyNumber    string
	CoverageAmount  decimal.Decimal
	PremiumAmount   decimal.Decimal
	StartDate       time.Time
	EndDate         time.Time
	CoverageDetails string
}

// CreateInsurancePolicy validates the partnership reference and creates the
// policy. Duplicate policy numbers are caught by the store's unique index.
func (s *InsuranceService) CreateInsurancePolicy(input CreateInsurancePolicyInput) (*models.InsurancePolicy, error) {
	if !input.CoverageAmount.IsPositive() || !input.PremiumAmount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, ErrInvalidDateRange
	}

	if _, err := s.partnershipRepo.FindByID(input.PartnershipID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnershipNotFound
		}
		return nil, fmt.Errorf("failed to find partnership: %w", err)
	}

	policy := &models.InsurancePolicy{
		PartnershipID:   input.PartnershipID,
		PolicyNumber:    input.PolicyNumber,
		CoverageAmount:  input.CoverageAmount,
		PremiumAmount:   input.PremiumAmount,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		CoverageDetails: input.CoverageDetails,
		IsActive:        true,
	}

	if err := s.policyRepo.Create(policy); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPolicyNumberTaken
		}
		return nil, fmt.Errorf("failed to create insurance policy: %w", err)
	}

	return policy, nil
}
