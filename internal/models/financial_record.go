package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseType string

const (
	ExpenseEquipment  ExpenseType = "equipment"
	ExpenseLabor      ExpenseType = "labor"
	ExpenseLandRental ExpenseType = "land_rental"
	ExpenseSeeds      ExpenseType = "seeds"
	ExpenseFertilizer ExpenseType = "fertilizer"
	ExpenseInsurance  ExpenseType = "insurance"
	ExpenseOther      ExpenseType = "other"
)

type FinancialRecord struct {
	ID              uint64          `gorm:"primarykey" json:"id"`
	PartnershipID   uint64          `gorm:"not null;index" json:"partnership_id"`
	ExpenseType     ExpenseType     `gorm:"type:varchar(20);not null" json:"expense_type"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	TransactionDate time.Time       `gorm:"not null" json:"transaction_date"`
	ReceiptURL      *string         `gorm:"type:varchar(512)" json:"receipt_url"`
	CreatedAt       time.Time       `json:"created_at"`

	// Relations
	Partnership Partnership `gorm:"foreignKey:PartnershipID" json:"-"`
}
