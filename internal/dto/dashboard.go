package dto

import (
	"time"

	"github.com/agrovia/partnership-api/internal/models"
	"github.com/shopspring/decimal"
)

// FarmActivityDTO represents a farm activity in API responses, with the
// creator's identity joined in when it was preloaded.
type FarmActivityDTO struct {
	ID           uint64              `json:"id"`
	FarmPlotID   uint64              `json:"farm_plot_id"`
	ActivityType models.ActivityType `json:"activity_type"`
	Description  string              `json:"description"`
	ActivityDate time.Time           `json:"activity_date"`
	Photos       []string            `json:"photos"`
	Videos       []string            `json:"videos"`
	CreatedBy    uint64              `json:"created_by"`
	CreatedAt    time.Time           `json:"created_at"`
	Creator      *UserDTO            `json:"creator,omitempty"`
}

// DashboardFinancialSummary is the expense subset shown on the dashboard.
// Yield, price, and projected revenue belong to the full financial summary
// endpoint only.
type DashboardFinancialSummary struct {
	TotalExpenses    decimal.Decimal                        `json:"total_expenses"`
	ExpenseBreakdown map[models.ExpenseType]decimal.Decimal `json:"expense_breakdown"`
}

// PartnerDashboardData is one partner's aggregated dashboard view.
type PartnerDashboardData struct {
	Partnership      models.Partnership        `json:"partnership"`
	FarmPlots        []models.FarmPlot         `json:"farm_plots"`
	RecentActivities []FarmActivityDTO         `json:"recent_activities"`
	FinancialSummary DashboardFinancialSummary `json:"financial_summary"`
	Notifications    []models.Notification     `json:"notifications"`
	RiskAlerts       []models.RiskAlert        `json:"risk_alerts"`
}

// ToFarmActivityDTO converts a FarmActivity model to FarmActivityDTO
func ToFarmActivityDTO(activity models.FarmActivity) FarmActivityDTO {
	dto := FarmActivityDTO{
		ID:           activity.ID,
		FarmPlotID:   activity.FarmPlotID,
		ActivityType: activity.ActivityType,
		Description:  activity.Description,
		ActivityDate: activity.ActivityDate,
		Photos:       activity.Photos,
		Videos:       activity.Videos,
		CreatedBy:    activity.CreatedBy,
		CreatedAt:    activity.CreatedAt,
	}

	// Include creator if preloaded
	if activity.Creator.ID != 0 {
		creator := ToUserDTO(activity.Creator)
		dto.Creator = &creator
	}

	return dto
}

// ToFarmActivityDTOs converts a slice of FarmActivity models
func ToFarmActivityDTOs(activities []models.FarmActivity) []FarmActivityDTO {
	dtos := make([]FarmActivityDTO, len(activities))
	for i, activity := range activities {
		dtos[i] = ToFarmActivityDTO(activity)
	}
	return dtos
}
