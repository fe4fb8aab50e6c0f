package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User role constants
const (
	RoleUser    = "user"
	RoleCaptain = "captain"
	RoleAdmin   = "admin"
)

// PermissionFleetManage grants non-admin users fleet configuration rights,
// such as alert threshold changes.
const PermissionFleetManage = "fleet_manage"

// User represents an account in the system. Password holds the bcrypt hash
// and is never serialized.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	Role        string    `json:"role"`
	OrgID       *string   `json:"org_id,omitempty"`
	Permissions []string  `json:"permissions,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ValidRole reports whether role is a recognized user role.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleCaptain, RoleAdmin:
		return true
	}
	return false
}

// NewUser creates a user with a normalized email. The password must already
// be hashed by the caller.
func NewUser(name, email, hashedPassword, role string) (*User, error) {
	if name == "" {
		return nil, errors.New("user name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("a valid email is required")
	}
	if hashedPassword == "" {
		return nil, errors.New("password hash is required")
	}
	if role == "" {
		role = RoleUser
	}
	if !ValidRole(role) {
		return nil, errors.New("invalid role: " + role)
	}

	now := time.Now()
	return &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Password:  hashedPassword,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// HasPermission reports whether the user carries the named permission.
// Admins implicitly hold every permission.
func (u *User) HasPermission(perm string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}
