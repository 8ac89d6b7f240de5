package dto

import (
	"time"

	"cms_backend/internal/models"
)

// UserDTO is the user representation returned to clients. The password hash
// never leaves the service layer.
type UserDTO struct {
	ID          uint      `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	IsActive    bool      `json:"is_active"`
	DateJoined  time.Time `json:"date_joined"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		FullName:    u.FullName(),
		IsStaff:     u.IsStaff,
		IsSuperuser: u.IsSuperuser,
		IsActive:    u.IsActive,
		DateJoined:  u.DateJoined,
	}
}

// UserUpdateRequest is the profile update form.
type UserUpdateRequest struct {
	Email     string `form:"email" json:"email" validate:"required,email"`
	FirstName string `form:"first_name" json:"first_name" validate:"omitempty,max=30"`
	LastName  string `form:"last_name" json:"last_name" validate:"omitempty,max=150"`
}
