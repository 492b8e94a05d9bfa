package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RolePartner    UserRole = "partner"
	RoleFarmer     UserRole = "farmer"
	RoleManagement UserRole = "management"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        *string   `gorm:"type:varchar(50);uniqueIndex" json:"phone"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role         UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	IsVerified   bool      `gorm:"not null;default:false" json:"is_verified"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Partnerships  []Partnership  `gorm:"foreignKey:PartnerID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"-"`
}
