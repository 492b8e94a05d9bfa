package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventFarmVisit          EventType = "farm_visit"
	EventWorkshop           EventType = "workshop"
	EventMeeting            EventType = "meeting"
	EventHarvestCelebration EventType = "harvest_celebration"
	EventOther              EventType = "other"
)

type CommunityEvent struct {
	ID                  uint64          `gorm:"primarykey" json:"id"`
	Title               string          `gorm:"type:varchar(255);not null" json:"title"`
	Description         string          `gorm:"type:text;not null" json:"description"`
	EventType           EventType       `gorm:"type:varchar(30);not null" json:"event_type"`
	EventDate           time.Time       `gorm:"not null" json:"event_date"`
	Location            string          `gorm:"type:varchar(255);not null" json:"location"`
	Fee                 decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"fee"`
	MaxParticipants     *int            `json:"max_participants"`
	CurrentParticipants int             `gorm:"not null;default:0" json:"current_participants"`
	IsActive            bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedBy           uint64          `gorm:"not null" json:"created_by"`
	CreatedAt           time.Time       `json:"created_at"`

	// Relations
	Creator User `gorm:"foreignKey:CreatedBy" json:"-"`
}
