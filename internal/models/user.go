package models

import (
	"strings"
	"time"
)

// User is an account identified by email instead of a separate username.
// Accounts start inactive and are activated once through the emailed
// verification link. Deactivation is the soft-delete path; users are never
// hard-deleted.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `gorm:"size:30" json:"first_name"`
	LastName     string    `gorm:"size:150" json:"last_name"`
	IsStaff      bool      `gorm:"default:false" json:"is_staff"`
	IsSuperuser  bool      `gorm:"default:false" json:"is_superuser"`
	IsActive     bool      `gorm:"default:false" json:"is_active"`
	DateJoined   time.Time `gorm:"autoCreateTime" json:"date_joined"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

// FullName returns first and last name joined by a space.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ShortName returns the first name.
func (u *User) ShortName() string {
	return u.FirstName
}
