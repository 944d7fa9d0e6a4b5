package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleVendor     UserRole = "vendor"
	UserRoleAdmin      UserRole = "admin"
	UserRoleSuperAdmin UserRole = "super_admin"
	UserRoleReviewer   UserRole = "reviewer"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case UserRoleVendor, UserRoleAdmin, UserRoleSuperAdmin, UserRoleReviewer:
		return true
	}
	return false
}

// CanReview reports whether the role may verify documents/sections and decide applications.
func (r UserRole) CanReview() bool {
	switch r {
	case UserRoleAdmin, UserRoleSuperAdmin, UserRoleReviewer:
		return true
	}
	return false
}

// CanManageCertificates reports whether the role may generate or regenerate certificates.
func (r UserRole) CanManageCertificates() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}

// CanManageUsers reports whether the role may create or deactivate users.
func (r UserRole) CanManageUsers() bool {
	return r == UserRoleSuperAdmin
}

// Actor is the authenticated identity performing an operation.
// Always passed explicitly into usecases, never read from ambient state.
type Actor struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  UserRole  `json:"role"`
}

// User represents a user entity
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`
}

// CreateUserInput represents input for creating a user (admin operation)
type CreateUserInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Phone    string `json:"phone" binding:"required,min=10,max=15"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}
