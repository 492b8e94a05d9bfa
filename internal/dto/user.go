package dto

import (
	"github.com/agrovia/partnership-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID         uint64          `json:"id"`
	Email      string          `json:"email"`
	Phone      *string         `json:"phone"`
	FullName   string          `json:"full_name"`
	Role       models.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
	IsActive   bool            `json:"is_active"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Email:      user.Email,
		Phone:      user.Phone,
		FullName:   user.FullName,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		IsActive:   user.IsActive,
	}
}
