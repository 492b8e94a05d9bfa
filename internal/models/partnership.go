package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PartnershipStatus string

const (
	PartnershipStatusPending   PartnershipStatus = "pending"
	PartnershipStatusActive    PartnershipStatus = "active"
	PartnershipStatusCompleted PartnershipStatus = "completed"
	PartnershipStatusCancelled PartnershipStatus = "cancelled"
)

// DefaultPartnershipPhase is the phase every new partnership starts in.
const DefaultPartnershipPhase = "planning"

type Partnership struct {
	ID               uint64            `gorm:"primarykey" json:"id"`
	PartnerID        uint64            `gorm:"not null;index" json:"partner_id"`
	InvestmentAmount decimal.Decimal   `gorm:"type:decimal(15,2);not null" json:"investment_amount"`
	StartDate        time.Time         `gorm:"not null" json:"start_date"`
	EndDate          time.Time         `gorm:"not null" json:"end_date"`
	EstimatedReturn  decimal.Decimal   `gorm:"type:decimal(15,2);not null" json:"estimated_return"`
	CurrentProgress  decimal.Decimal   `gorm:"type:decimal(5,2);not null;default:0" json:"current_progress"`
	CurrentPhase     string            `gorm:"type:varchar(100);not null;default:'planning'" json:"current_phase"`
	Status           PartnershipStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`

	// Relations
	Partner           User              `gorm:"foreignKey:PartnerID" json:"-"`
	FarmPlots         []FarmPlot        `gorm:"foreignKey:PartnershipID" json:"-"`
	FinancialRecords  []FinancialRecord `gorm:"foreignKey:PartnershipID" json:"-"`
	InsurancePolicies []InsurancePolicy `gorm:"foreignKey:PartnershipID" json:"-"`
}
