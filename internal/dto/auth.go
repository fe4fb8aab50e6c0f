package dto

import (
	"strings"

	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
)

// RegisterRequest represents request to register a new user account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Role     string `json:"role" binding:"omitempty"`
}

// Validate validates fields the binding tags cannot express
func (r *RegisterRequest) Validate() (bool, string) {
	if r.Role != "" && !domain.ValidRole(r.Role) {
		return false, "Role must be one of: user, captain, admin"
	}
	if strings.TrimSpace(r.Name) == "" {
		return false, "Name must not be blank"
	}
	return true, ""
}

// LoginRequest represents request to authenticate with email and password
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents request to update the current user's profile
type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	Password *string `json:"password" binding:"omitempty,min=8,max=128"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateProfileRequest) Validate() (bool, string) {
	if r.Name == nil && r.Password == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}

// UserResponse represents user data in response
type UserResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	OrgID       *string  `json:"org_id,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	IsActive    bool     `json:"is_active"`
	CreatedAt   string   `json:"created_at"`
}

// AuthResponse represents a successful login or registration
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse converts a domain user to its response form
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		OrgID:       user.OrgID,
		Permissions: user.Permissions,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
