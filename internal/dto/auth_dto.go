package dto

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AdminDTO struct {
	Id           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        *string   `json:"email"`
	IsAdmin      bool      `json:"is_admin"`
	AuthProvider string    `json:"auth_provider"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LoginResponse struct {
	Admin AdminDTO `json:"admin"`

	// Cookie material consumed by the controller, never serialized.
	Token        string `json:"-"`
	CookieMaxAge int    `json:"-"`
}

type RegisterAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	IsAdmin  bool   `json:"is_admin"`
}

type RegisterAdminResponse struct {
	Id       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type CheckUsernameResponse struct {
	Available bool `json:"available"`
}

type CheckEmailResponse struct {
	Available bool `json:"available"`
}
