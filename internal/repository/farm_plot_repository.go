package repository

import (
	"github.com/agrovia/partnership-api/internal/models"
	"gorm.io/gorm"
)

// GormFarmPlotRepository is a GORM implementation of FarmPlotRepository
type GormFarmPlotRepository struct {
	db *gorm.DB
}

// NewFarmPlotRepository creates a new FarmPlotRepository
func NewFarmPlotRepository(db *gorm.DB) FarmPlotRepository {
	return &GormFarmPlotRepository{db: db}
}

// Create creates a new farm plot
func (r *GormFarmPlotRepository) Create(plot *models.FarmPlot) error {
	return r.db.Create(plot).Error
}

// FindByID finds a farm plot by ID
func (r *GormFarmPlotRepository) FindByID(id uint64) (*models.FarmPlot, error) {
	var plot models.FarmPlot
	if err := r.db.First(&plot, id).Error; err != nil {
		return nil, err
	}
	return &plot, nil
}

// ListByPartnership lists all plots of a partnership
func (r *GormFarmPlotRepository) ListByPartnership(partnershipID uint64) ([]models.FarmPlot, error) {
	var plots []models.FarmPlot
	if err := r.db.Where("partnership_id = ?", partnershipID).
		Find(&plots).Error; err != nil {
		return nil, err
	}
	return plots, nil
}
