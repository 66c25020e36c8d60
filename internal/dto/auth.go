package dto

import (
	"strings"

	"github.com/datsan-vn/datsan-go/internal/domain"
)

// LoginRequest represents the request to create a session
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates the LoginRequest
func (r *LoginRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Email) == "" {
		return false, "Email is required"
	}
	if r.Password == "" {
		return false, "Password is required"
	}
	return true, ""
}

// RegisterRequest represents the request to register a new account
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Validate validates the RegisterRequest
func (r *RegisterRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.FullName) == "" {
		return false, "Full name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		return false, "Email is required"
	}
	if len(r.Password) < 6 {
		return false, "Password must be at least 6 characters"
	}
	return true, ""
}

// ForgotPasswordRequest starts the password-reset OTP flow
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest completes the password-reset OTP flow
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

// Validate validates the ResetPasswordRequest
func (r *ResetPasswordRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.OTP) == "" {
		return false, "OTP is required"
	}
	if len(r.NewPassword) < 6 {
		return false, "Password must be at least 6 characters"
	}
	return true, ""
}

// UpdateProfileRequest updates the user profile
type UpdateProfileRequest struct {
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
}

// LoginResponse is the backend payload for a created session
type LoginResponse struct {
	Token string         `json:"token"`
	User  domain.Profile `json:"user"`
}
