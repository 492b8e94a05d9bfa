package models

import "time"

type RiskType string

const (
	RiskWeather RiskType = "weather"
	RiskPest    RiskType = "pest"
	RiskDisease RiskType = "disease"
	RiskFlood   RiskType = "flood"
	RiskDrought RiskType = "drought"
	RiskOther   RiskType = "other"
)

// Severity levels range from 1 (lowest) to 5 (highest).
const (
	MinSeverityLevel = 1
	MaxSeverityLevel = 5
)

type RiskAlert struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	FarmPlotID    uint64    `gorm:"not null;index" json:"farm_plot_id"`
	RiskType      RiskType  `gorm:"type:varchar(20);not null" json:"risk_type"`
	SeverityLevel int       `gorm:"not null" json:"severity_level"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	AlertDate     time.Time `gorm:"not null" json:"alert_date"`
	IsResolved    bool      `gorm:"not null;default:false" json:"is_resolved"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	FarmPlot FarmPlot `gorm:"foreignKey:FarmPlotID" json:"-"`
}
