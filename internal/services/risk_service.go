package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/repository"
	"gorm.io/gorm"
)

var ErrSeverityOutOfRange = errors.New("severity level must be between 1 and 5")

// RiskService provides business logic for risk alerts.
type RiskService struct {
	alertRepo repository.RiskAlertRepository
	plotRepo  repository.FarmPlotRepository
}

// NewRiskService creates a new RiskService.
func NewRiskService(alertRepo repository.RiskAlertRepository, plotRepo repository.FarmPlotRepository) *RiskService {
	return &RiskService{
		alertRepo: alertRepo,
		plotRepo:  plotRepo,
	}
}

// CreateRiskAlertInput represents parameters to raise a new risk alert.
type CreateRiskAlertInput struct {
	FarmPlotID    uint64
	RiskType      models.RiskType
	SeverityLevel int
	Title         string
	Description   string
	AlertDate     time.Time
}

// CreateRiskAlert validates the plot reference and severity range and raises
// the alert unresolved.
func (s *RiskService) CreateRiskAlert(input CreateRiskAlertInput) (*models.RiskAlert, error) {
	if input.SeverityLevel < models.MinSeverityLevel || input.SeverityLevel > models.MaxSeverityLevel {
		return nil, ErrSeverityOutOfRange
	}

	if _, err := s.plotRepo.FindByID(input.FarmPlotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFarmPlotNotFound
		}
		return nil, fmt.Errorf("failed to find farm plot: %w", err)
	}

	alert := &models.RiskAlert{
		FarmPlotID:    input.FarmPlotID,
		RiskType:      input.RiskType,
		SeverityLevel: input.SeverityLevel,
		Title:         input.Title,
		Description:   input.Description,
		AlertDate:     input.AlertDate,
		IsResolved:    false,
	}

	if err := s.alertRepo.Create(alert); err != nil {
		return nil, fmt.Errorf("failed to create risk alert: %w", err)
	}

	return alert, nil
}

// ListRiskAlerts lists alerts ordered by severity then recency, optionally
// filtered to one farm plot.
func (s *RiskService) ListRiskAlerts(farmPlotID *uint64) ([]models.RiskAlert, error) {
	alerts, err := s.alertRepo.List(farmPlotID)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk alerts: %w", err)
	}
	return alerts, nil
}
