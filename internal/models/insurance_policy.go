package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InsurancePolicy struct {
	ID              uint64          `gorm:"primarykey" json:"id"`
	PartnershipID   uint64          `gorm:"not null;index" json:"partnership_id"`
	PolicyNumber    string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"policy_number"`
	CoverageAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"coverage_amount"`
	PremiumAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"premium_amount"`
	StartDate       time.Time       `gorm:"not null" json:"start_date"`
	EndDate         time.Time       `gorm:"not null" json:"end_date"`
	CoverageDetails string          `gorm:"type:text;not null" json:"coverage_details"`
	IsActive        bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`

	// Relations
	Partnership Partnership `gorm:"foreignKey:PartnershipID" json:"-"`
}
