package repository

import (
	"github.com/agrovia/partnership-api/internal/models"
	"gorm.io/gorm"
)

// GormFinancialRecordRepository is a GORM implementation of FinancialRecordRepository
type GormFinancialRecordRepository struct {
	db *gorm.DB
}

// NewFinancialRecordRepository creates a new FinancialRecordRepository
func NewFinancialRecordRepository(db *gorm.DB) FinancialRecordRepository {
	return &GormFinancialRecordRepository{db: db}
}

// Create creates a new financial record
func (r *GormFinancialRecordRepository) Create(record *models.FinancialRecord) error {
	return r.db.Create(record).Error
}

// ListByPartnership lists all financial records of a partnership
func (r *GormFinancialRecordRepository) ListByPartnership(partnershipID uint64) ([]models.FinancialRecord, error) {
	var records []models.FinancialRecord
	if err := r.db.Where("partnership_id = ?", partnershipID).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
