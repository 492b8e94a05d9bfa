package repository

import (
	"github.com/agrovia/partnership-api/internal/models"
	"gorm.io/gorm"
)

// GormPartnershipRepository is a GORM implementation of PartnershipRepository
type GormPartnershipRepository struct {
	db *gorm.DB
}

// NewPartnershipRepository creates a new PartnershipRepository
func NewPartnershipRepository(db *gorm.DB) PartnershipRepository {
	return &GormPartnershipRepository{db: db}
}

// Create creates a new partnership
func (r *GormPartnershipRepository) Create(partnership *models.Partnership) error {
	return r.db.Create(partnership).Error
}

// FindByID finds a partnership by ID
func (r *GormPartnershipRepository) FindByID(id uint64) (*models.Partnership, error) {
	var partnership models.Partnership
	if err := r.db.First(&partnership, id).Error; err != nil {
		return nil, err
	}
	return &partnership, nil
}

// FindFirstByPartnerID returns the partner's first partnership, ordered by id.
// A partner can hold several partnerships; the dashboard addresses the
// earliest one, so the selection has to be deterministic.
func (r *GormPartnershipRepository) FindFirstByPartnerID(partnerID uint64) (*models.Partnership, error) {
	var partnership models.Partnership
	if err := r.db.Where("partner_id = ?", partnerID).
		Order("id ASC").
		First(&partnership).Error; err != nil {
		return nil, err
	}
	return &partnership, nil
}
