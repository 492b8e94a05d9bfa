package repository

import (
	"github.com/agrovia/partnership-api/internal/models"
	"github.com/agrovia/partnership-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByPhone finds a user by phone number
	FindByPhone(phone string) (*models.User, error)
}

// PartnershipRepository defines the interface for partnership data access
type PartnershipRepository interface {
	// Create creates a new partnership
	Create(partnership *models.Partnership) error

	// FindByID finds a partnership by ID
	FindByID(id uint64) (*models.Partnership, error)

	// FindFirstByPartnerID returns the partner's first partnership, ordered by id
	FindFirstByPartnerID(partnerID uint64) (*models.Partnership, error)
}

// FarmPlotRepository defines the interface for farm plot data access
type FarmPlotRepository interface {
	// Create creates a new farm plot
	Create(plot *models.FarmPlot) error

	// FindByID finds a farm plot by ID
	FindByID(id uint64) (*models.FarmPlot, error)

	// ListByPartnership lists all plots of a partnership
	ListByPartnership(partnershipID uint64) ([]models.FarmPlot, error)
}

// FarmActivityRepository defines the interface for farm activity data access
type FarmActivityRepository interface {
	// Create creates a new farm activity
	Create(activity *models.FarmActivity) error

	// ListByFarmPlot lists a plot's activities, most recent activity date first
	ListByFarmPlot(farmPlotID uint64) ([]models.FarmActivity, error)

	// ListRecentByFarmPlots lists the most recently created activities across
	// the given plots with the creator preloaded
	ListRecentByFarmPlots(farmPlotIDs []uint64, limit int) ([]models.FarmActivity, error)
}

// FinancialRecordRepository defines the interface for financial record data access
type FinancialRecordRepository interface {
	// Create creates a new financial record
	Create(record *models.FinancialRecord) error

	// ListByPartnership lists all financial records of a partnership
	ListByPartnership(partnershipID uint64) ([]models.FinancialRecord, error)
}

// InsurancePolicyRepository defines the interface for insurance policy data access
type InsurancePolicyRepository interface {
	// Create creates a new insurance policy
	Create(policy *models.InsurancePolicy) error
}

// RiskAlertRepository defines the interface for risk alert data access
type RiskAlertRepository interface {
	// Create creates a new risk alert
	Create(alert *models.RiskAlert) error

	// List lists alerts ordered by severity then recency, optionally
	// filtered to one farm plot
	List(farmPlotID *uint64) ([]models.RiskAlert, error)

	// ListByFarmPlots lists alerts across the given plots, most recent first
	ListByFarmPlots(farmPlotIDs []uint64) ([]models.RiskAlert, error)
}

// CommunityEventRepository defines the interface for community event data access
type CommunityEventRepository interface {
	// Create creates a new community event
	Create(event *models.CommunityEvent) error

	// ListActive lists active events, latest event date first
	ListActive(params utils.PaginationParams) ([]models.CommunityEvent, int64, error)
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create creates a new notification
	Create(notification *models.Notification) error

	// ListByUser lists a user's notifications, most recent first
	ListByUser(userID uint64) ([]models.Notification, error)

	// ListRecentByUser lists a user's most recent notifications
	ListRecentByUser(userID uint64, limit int) ([]models.Notification, error)
}

// ChatMessageRepository defines the interface for chat message data access
type ChatMessageRepository interface {
	// Create creates a new chat message
	Create(message *models.ChatMessage) error

	// ListConversation lists every message exchanged between two users in
	// chronological order
	ListConversation(userID1, userID2 uint64) ([]models.ChatMessage, error)
}
