package dto

import "github.com/google/uuid"

type LoginRequest struct {
	UserID   string `json:"userId" validate:"required,min=1,max=100"`
	Password string `json:"password" validate:"required,min=1"`
}

type RegisterRequest struct {
	UserID              string  `json:"userId" validate:"required,min=3,max=100"`
	Password            string  `json:"password" validate:"required,min=6"`
	FullName            *string `json:"fullName" validate:"omitempty,max=200"`
	Email               *string `json:"email" validate:"omitempty,email"`
	Specialty           *string `json:"specialty" validate:"omitempty,max=100"`
	HospitalAffiliation *string `json:"hospitalAffiliation" validate:"omitempty,max=200"`
}

// UserInfo is the public projection of a user returned with tokens.
// The password hash is never serialized.
type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	UserID   string    `json:"userId"`
	FullName *string   `json:"fullName,omitempty"`
	Email    *string   `json:"email,omitempty"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// ProfileResponse is the /auth/me projection.
type ProfileResponse struct {
	ID                  uuid.UUID `json:"id"`
	UserID              string    `json:"userId"`
	FullName            *string   `json:"fullName,omitempty"`
	Email               *string   `json:"email,omitempty"`
	Specialty           *string   `json:"specialty,omitempty"`
	HospitalAffiliation *string   `json:"hospitalAffiliation,omitempty"`
}
