package model

import (
	"errors"
	"time"
)

// Role is the persisted role of a user. Anonymous callers have no role at all;
// "guest" is never stored.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the persisted roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered account.
type User struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	PasswordHashed string    `db:"password_hashed" json:"-"`
	Role           Role      `db:"role" json:"role"`
	AvatarURL      *string   `db:"avatar_url" json:"avatar_url"`
	AvatarKey      *string   `db:"avatar_key" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// UserSummary is the lightweight user shape embedded in lists and content.
type UserSummary struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	AvatarURL *string `db:"avatar_url" json:"avatar_url"`
}

// RegisterRequest is the request body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrNameTaken is returned when registering with a name that already exists
	ErrNameTaken = errors.New("username already taken")

	// ErrAdminExists is returned when registering an admin while one already exists
	ErrAdminExists = errors.New("an admin user already exists")

	// ErrInvalidCredentials is returned when login credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRole is returned when the requested role is not user or admin
	ErrInvalidRole = errors.New("invalid role")

	// ErrForbidden is returned when the actor may not perform the action
	ErrForbidden = errors.New("forbidden")
)
