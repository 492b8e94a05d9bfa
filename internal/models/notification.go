package models

import "time"

type NotificationType string

const (
	NotificationPayment        NotificationType = "payment"
	NotificationProgressUpdate NotificationType = "progress_update"
	NotificationRiskAlert      NotificationType = "risk_alert"
	NotificationEvent          NotificationType = "event"
	NotificationGeneral        NotificationType = "general"
)

type Notification struct {
	ID               uint64           `gorm:"primarykey" json:"id"`
	UserID           uint64           `gorm:"not null;index" json:"user_id"`
	Title            string           `gorm:"type:varchar(255);not null" json:"title"`
	Message          string           `gorm:"type:text;not null" json:"message"`
	NotificationType NotificationType `gorm:"type:varchar(20);not null" json:"notification_type"`
	IsRead           bool             `gorm:"not null;default:false" json:"is_read"`
	CreatedAt        time.Time        `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
