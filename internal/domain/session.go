package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthSession is the authenticated user state persisted on the device.
// It is created on login and destroyed on logout or when the backend
// signals an unauthorized response.
type AuthSession struct {
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenExpiry extracts the expiry claim from the bearer token without
// verifying the signature. Verification is the backend's job; the
// client only needs to know when to drop a stale session.
func (s *AuthSession) TokenExpiry() (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// IsExpired reports whether the token carries an expiry in the past.
// Tokens without a readable expiry claim are treated as live and left
// for the backend to reject.
func (s *AuthSession) IsExpired(now time.Time) bool {
	exp, ok := s.TokenExpiry()
	if !ok {
		return false
	}
	return now.After(exp)
}

// Profile is the user profile as returned by the backend.
type Profile struct {
	ID        string `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      string `json:"role"`
}
