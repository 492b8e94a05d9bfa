package repository

import (
	"github.com/agrovia/partnership-api/internal/database"
	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/utils"
	"gorm.io/gorm"
)

// GormCommunityEventRepository is a GORM implementation of CommunityEventRepository
type GormCommunityEventRepository struct {
	db *gorm.DB
}

// NewCommunityEventRepository creates a new CommunityEventRepository
func NewCommunityEventRepository(db *gorm.DB) CommunityEventRepository {
	return &GormCommunityEventRepository{db: db}
}

// Create creates a new community event
func (r *GormCommunityEventRepository) Create(event *models.CommunityEvent) error {
	return r.db.Create(event).Error
}

// ListActive lists active events, latest event date first
func (r *GormCommunityEventRepository) ListActive(params utils.PaginationParams) ([]models.CommunityEvent, int64, error) {
	query := r.db.Model(&models.CommunityEvent{}).Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []models.CommunityEvent
	if err := query.Order("event_date DESC").
		Scopes(database.Paginate(params)).
		Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, total, nil
}
