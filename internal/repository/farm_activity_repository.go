package repository

import (
	"github.com/agrovia/partnership-api/internal/models"
	"gorm.io/gorm"
)

// GormFarmActivityRepository is a GORM implementation of FarmActivityRepository
type GormFarmActivityRepository struct {
	db *gorm.DB
}

// NewFarmActivityRepository creates a new FarmActivityRepository
func NewFarmActivityRepository(db *gorm.DB) FarmActivityRepository {
	return &GormFarmActivityRepository{db: db}
}

// Create creates a new farm activity
func (r *GormFarmActivityRepository) Create(activity *models.FarmActivity) error {
	return r.db.Create(activity).Error
}

// ListByFarmPlot lists a plot's activities, most recent activity date first
func (r *GormFarmActivityRepository) ListByFarmPlot(farmPlotID uint64) ([]models.FarmActivity, error) {
	var activities []models.FarmActivity
	if err := r.db.Where("farm_plot_id = ?", farmPlotID).
		Order("activity_date DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// ListRecentByFarmPlots lists the most recently created activities across the
// given plots with the creator preloaded
func (r *GormFarmActivityRepository) ListRecentByFarmPlots(farmPlotIDs []uint64, limit int) ([]models.FarmActivity, error) {
	if len(farmPlotIDs) == 0 {
		return []models.FarmActivity{}, nil
	}

	var activities []models.FarmActivity
	if err := r.db.Preload("Creator").
		Where("farm_plot_id IN ?", farmPlotIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
