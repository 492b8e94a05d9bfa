package services

import (
	"errors"
	"fmt"

	"github.com/agrovia/partnership-api/internal/constants"
	"github.com/agrovia/partnership-api/internal/dto"
	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNoPartnershipForPartner is returned when the partner has no partnership
// to build a dashboard from.
var ErrNoPartnershipForPartner = errors.New("no partnership for this partner")

// DashboardService assembles one partner's dashboard from the partnership,
// its plots, recent activity, expenses, notifications, and risk alerts. Every
// sub-fetch must succeed; a partial dashboard is never returned.
type DashboardService struct {
	partnershipRepo  repository.PartnershipRepository
	plotRepo         repository.FarmPlotRepository
	activityRepo     repository.FarmActivityRepository
	recordRepo       repository.FinancialRecordRepository
	notificationRepo repository.NotificationRepository
	alertRepo        repository.RiskAlertRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	partnershipRepo repository.PartnershipRepository,
	plotRepo repository.FarmPlotRepository,
	activityRepo repository.FarmActivityRepository,
	recordRepo repository.FinancialRecordRepository,
	notificationRepo repository.NotificationRepository,
	alertRepo repository.RiskAlertRepository,
) *DashboardService {
	return &DashboardService{
		partnershipRepo:  partnershipRepo,
		plotRepo:         plotRepo,
		activityRepo:     activityRepo,
		recordRepo:       recordRepo,
		notificationRepo: notificationRepo,
		alertRepo:        alertRepo,
	}
}

// GetPartnerDashboard builds the dashboard for one partner. The partnership
// lookup must resolve first; the remaining fetches are independent reads.
func (s *DashboardService) GetPartnerDashboard(partnerID uint64) (*dto.PartnerDashboardData, error) {
	partnership, err := s.partnershipRepo.FindFirstByPartnerID(partnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPartnershipForPartner
		}
		return nil, fmt.Errorf("failed to find partnership: %w", err)
	}

	plots, err := s.plotRepo.ListByPartnership(partnership.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list farm plots: %w", err)
	}

	plotIDs := make([]uint64, len(plots))
	for i, plot := range plots {
		plotIDs[i] = plot.ID
	}

	activities, err := s.activityRepo.ListRecentByFarmPlots(plotIDs, constants.DashboardRecentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activities: %w", err)
	}

	records, err := s.recordRepo.ListByPartnership(partnership.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial records: %w", err)
	}

	totalExpenses := decimal.Zero
	breakdown := make(map[models.ExpenseType]decimal.Decimal)
	for _, record := range records {
		totalExpenses = totalExpenses.Add(record.Amount)
		breakdown[record.ExpenseType] = breakdown[record.ExpenseType].Add(record.Amount)
	}

	notifications, err := s.notificationRepo.ListRecentByUser(partnerID, constants.DashboardNotificationLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	alerts, err := s.alertRepo.ListByFarmPlots(plotIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk alerts: %w", err)
	}

	return &dto.PartnerDashboardData{
		Partnership:      *partnership,
		FarmPlots:        plots,
		RecentActivities: dto.ToFarmActivityDTOs(activities),
		FinancialSummary: dto.DashboardFinancialSummary{
			TotalExpenses:    totalExpenses,
			ExpenseBreakdown: breakdown,
		},
		Notifications:    notifications,
		RiskAlerts:       alerts,
	}, nil
}
