package repository

import (
	"github.com/agrovia/partnership-api/internal/models"
	"gorm.io/gorm"
)

// GormInsurancePolicyRepository is a GORM implementation of InsurancePolicyRepository
type GormInsurancePolicyRepository struct {
	db *gorm.DB
}

// NewInsurancePolicyRepository creates a new InsurancePolicyRepository
func NewInsurancePolicyRepository(db *gorm.DB) InsurancePolicyRepository {
	return &GormInsurancePolicyRepository{db: db}
}

// Create creates a new insurance policy. Duplicate policy numbers surface as
// the store's unique constraint violation.
func (r *GormInsurancePolicyRepository) Create(policy *models.InsurancePolicy) error {
	return r.db.Create(policy).Error
}
