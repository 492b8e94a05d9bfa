package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type FarmPlot struct {
	ID                  uint64          `gorm:"primarykey" json:"id"`
	PartnershipID       uint64          `gorm:"not null;index" json:"partnership_id"`
	PlotName            string          `gorm:"type:varchar(255);not null" json:"plot_name"`
	LocationCoordinates string          `gorm:"type:varchar(255);not null" json:"location_coordinates"`
	AreaHectares        decimal.Decimal `gorm:"type:decimal(10,4);not null" json:"area_hectares"`
	SoilType            *string         `gorm:"type:varchar(100)" json:"soil_type"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`

	// Relations
	Partnership Partnership    `gorm:"foreignKey:PartnershipID" json:"-"`
	Activities  []FarmActivity `gorm:"foreignKey:FarmPlotID" json:"-"`
	RiskAlerts  []RiskAlert    `gorm:"foreignKey:FarmPlotID" json:"-"`
}
