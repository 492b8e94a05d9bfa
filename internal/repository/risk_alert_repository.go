package repository

import (
	"github.com/agrovia/partnership-api/internal/models"
	"gorm.io/gorm"
)

// GormRiskAlertRepository is a GORM implementation of RiskAlertRepository
type GormRiskAlertRepository struct {
	db *gorm.DB
}

// NewRiskAlertRepository creates a new RiskAlertRepository
func NewRiskAlertRepository(db *gorm.DB) RiskAlertRepository {
	return &GormRiskAlertRepository{db: db}
}

// Create creates a new risk alert
func (r *GormRiskAlertRepository) Create(alert *models.RiskAlert) error {
	return r.db.Create(alert).Error
}

// List lists alerts ordered by severity then recency, optionally filtered to
// one farm plot
func (r *GormRiskAlertRepository) List(farmPlotID *uint64) ([]models.RiskAlert, error) {
	query := r.db.Model(&models.RiskAlert{})
	if farmPlotID != nil {
		query = query.Where("farm_plot_id = ?", *farmPlotID)
	}

	var alerts []models.RiskAlert
	if err := query.Order("severity_level DESC, created_at DESC").
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// ListByFarmPlots lists alerts across the given plots, most recent first
func (r *GormRiskAlertRepository) ListByFarmPlots(farmPlotIDs []uint64) ([]models.RiskAlert, error) {
	if len(farmPlotIDs) == 0 {
		return []models.RiskAlert{}, nil
	}

	var alerts []models.RiskAlert
	if err := r.db.Where("farm_plot_id IN ?", farmPlotIDs).
		Order("created_at DESC").
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}
