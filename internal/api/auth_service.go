package api

import (
	"context"
	"errors"

	"github.com/datsan-vn/datsan-go/internal/domain"
	"github.com/datsan-vn/datsan-go/internal/dto"
)

// AuthService wraps the session and profile endpoints
type AuthService struct {
	client *Client
}

// NewAuthService creates a new AuthService
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login creates a session and returns the bearer token with the user
// profile.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}
	var out dto.LoginResponse
	if err := s.client.post(ctx, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.Profile, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}
	var out domain.Profile
	if err := s.client.post(ctx, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword starts the password-reset OTP flow
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.client.post(ctx, "/auth/forgot-password", &dto.ForgotPasswordRequest{Email: email}, nil)
}

// ResetPassword completes the password-reset OTP flow
func (s *AuthService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if valid, msg := req.Validate(); !valid {
		return errors.New(msg)
	}
	return s.client.post(ctx, "/auth/reset-password", req, nil)
}

// GetProfile reads the current user profile
func (s *AuthService) GetProfile(ctx context.Context) (*domain.Profile, error) {
	var out domain.Profile
	if err := s.client.get(ctx, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile updates the current user profile
func (s *AuthService) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*domain.Profile, error) {
	var out domain.Profile
	if err := s.client.put(ctx, "/users/me", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadAvatar uploads a profile picture, compressing sources over 1 MB
func (s *AuthService) UploadAvatar(ctx context.Context, fileName string, data []byte) (*dto.UploadResponse, error) {
	return s.client.uploadImage(ctx, "/users/me/avatar", "avatar", fileName, data)
}
