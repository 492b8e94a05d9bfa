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
	ErrFarmPlotNotFound    = errors.New("farm plot not found")
	ErrNonPositiveArea     = errors.New("area must be positive")
	ErrActivityUserMissing = errors.New("creator user not found")
)

// FarmService provides business logic for farm plots and activities.
type FarmService struct {
	plotRepo        repository.FarmPlotRepository
	activityRepo    repository.FarmActivityRepository
	partnershipRepo repository.PartnershipRepository
	userRepo        repository.UserRepository
}

// NewFarmService creates a new FarmService.
func NewFarmService(
	plotRepo repository.FarmPlotRepository,
	activityRepo repository.FarmActivityRepository,
	partnershipRepo repository.PartnershipRepository,
	userRepo repository.UserRepository,
) *FarmService {
	return &FarmService{
		plotRepo:        plotRepo,
		activityRepo:    activityRepo,
		partnershipRepo: partnershipRepo,
		userRepo:        userRepo,
	}
}

// CreateFarmPlotInput represents parameters to create a new farm plot.
type CreateFarmPlotInput struct {
	PartnershipID       uint64
	PlotName            string
	LocationCoordinates string
	AreaHectares        decimal.Decimal
	SoilType            *string
}

// CreateFarmPlot validates the partnership reference and creates the plot.
func (s *FarmService) CreateFarmPlot(input CreateFarmPlotInput) (*models.FarmPlot, error) {
	if !input.AreaHectares.IsPositive() {
		return nil, ErrNonPositiveArea
	}

	if _, err := s.partnershipRepo.FindByID(input.PartnershipID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnershipNotFound
		}
		return nil, fmt.Errorf("failed to find partnership: %w", err)
	}

	plot := &models.FarmPlot{
		PartnershipID:       input.PartnershipID,
		PlotName:            input.PlotName,
		LocationCoordinates: input.LocationCoordinates,
		AreaHectares:        input.AreaHectares,
		SoilType:            input.SoilType,
	}

	if err := s.plotRepo.Create(plot); err != nil {
		return nil, fmt.Errorf("failed to create farm plot: %w", err)
	}

	return plot, nil
}

// CreateFarmActivityInput represents parameters to log a new farm activity.
type CreateFarmActivityInput struct {
	FarmPlotID   uint64
	ActivityType models.ActivityType
	Description  string
	ActivityDate time.Time
	Photos       []string
	Videos       []string
	CreatedBy    uint64
}

// CreateFarmActivity validates the plot and creator references and logs the
// activity.
func (s *FarmService) CreateFarmActivity(input CreateFarmActivityInput) (*models.FarmActivity, error) {
	if _, err := s.plotRepo.FindByID(input.FarmPlotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFarmPlotNotFound
		}
		return nil, fmt.Errorf("failed to find farm plot: %w", err)
	}

	if _, err := s.userRepo.FindByID(input.CreatedBy); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrActivityUserMissing
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	activity := &models.FarmActivity{
		FarmPlotID:   input.FarmPlotID,
		ActivityType: input.ActivityType,
		Description:  input.Description,
		ActivityDate: input.ActivityDate,
		Photos:       input.Photos,
		Videos:       input.Videos,
		CreatedBy:    input.CreatedBy,
	}

	if err := s.activityRepo.Create(activity); err != nil {
		return nil, fmt.Errorf("failed to create farm activity: %w", err)
	}

	return activity, nil
}

// ListFarmActivities returns a plot's activities, most recent activity date
// first. An unknown plot is an error; a plot without activities is not.
func (s *FarmService) ListFarmActivities(farmPlotID uint64) ([]models.FarmActivity, error) {
	if _, err := s.plotRepo.FindByID(farmPlotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFarmPlotNotFound
		}
		return nil, fmt.Errorf("failed to find farm plot: %w", err)
	}

	activities, err := s.activityRepo.ListByFarmPlot(farmPlotID)
	if err != nil {
		return nil, fmt.Errorf("failed to list farm activities: %w", err)
	}
	return activities, nil
}
