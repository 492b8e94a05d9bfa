package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type ActivityType string

const (
	ActivityPlanting    ActivityType = "planting"
	ActivityFertilizing ActivityType = "fertilizing"
	ActivityWatering    ActivityType = "watering"
	ActivityPestControl ActivityType = "pest_control"
	ActivityHarvesting  ActivityType = "harvesting"
	ActivityOther       ActivityType = "other"
)

// StringList stores a list of URLs as a JSON-encoded text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

type FarmActivity struct {
	ID           uint64       `gorm:"primarykey" json:"id"`
	FarmPlotID   uint64       `gorm:"not null;index" json:"farm_plot_id"`
	ActivityType ActivityType `gorm:"type:varchar(20);not null" json:"activity_type"`
	Description  string       `gorm:"type:text;not null" json:"description"`
	ActivityDate time.Time    `gorm:"not null" json:"activity_date"`
	Photos       StringList   `gorm:"type:text" json:"photos"`
	Videos       StringList   `gorm:"type:text" json:"videos"`
	CreatedBy    uint64       `gorm:"not null" json:"created_by"`
	CreatedAt    time.Time    `json:"created_at"`

	// Relations
	FarmPlot FarmPlot `gorm:"foreignKey:FarmPlotID" json:"-"`
	Creator  User     `gorm:"foreignKey:CreatedBy" json:"-"`
}
