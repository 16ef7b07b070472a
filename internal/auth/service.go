// Package auth wraps the OTP login endpoints. Tokens it returns are
// caller-owned; the session package persists them if the caller wants to.
package auth

import (
	"context"

	"restaurant-manager/internal/api"
	"restaurant-manager/internal/profile"
)

// OTPChallenge acknowledges a sent code.
type OTPChallenge struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Login is the result of a verified OTP: the profile, the bearer token,
// and whether the profile has been filled in yet.
type Login struct {
	Restaurant profile.Restaurant `json:"restaurant"`
	Token      string             `json:"token"`
	IsProfile  bool               `json:"isProfile"`
	Message    string             `json:"message,omitempty"`
}

// Service wraps the authentication endpoints.
type Service struct {
	client *api.Client
}

// NewService creates a new auth service.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// SendOTP asks the backend to text a one-time code to phone. This is an
// unauthenticated call, so no Authorization header is sent.
func (s *Service) SendOTP(ctx context.Context, phone string) (*OTPChallenge, error) {
	env, err := s.client.Post(ctx, "/restaurant/send-otp", map[string]string{"phone": phone}, "")
	if err != nil {
		return nil, err
	}
	var c OTPChallenge
	if err := env.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// VerifyOTP exchanges a code for a session.
func (s *Service) VerifyOTP(ctx context.Context, phone, otp string) (*Login, error) {
	env, err := s.client.Post(ctx, "/restaurant/verify-otp",
		map[string]string{"phone": phone, "otp": otp}, "")
	if err != nil {
		return nil, err
	}
	var l Login
	if err := env.Decode(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Register creates the restaurant record right after a first login.
func (s *Service) Register(ctx context.Context, r profile.Restaurant, token string) (*profile.Restaurant, error) {
	env, err := s.client.Post(ctx, "/restaurant/register", r, token)
	if err != nil {
		return nil, err
	}
	var data struct {
		Restaurant profile.Restaurant `json:"restaurant"`
	}
	if err := env.Decode(&data); err != nil {
		return nil, err
	}
	return &data.Restaurant, nil
}

// Logout invalidates the session server-side. Callers clear their stored
// session regardless of the outcome.
func (s *Service) Logout(ctx context.Context, token string) error {
	_, err := s.client.Post(ctx, "/restaurant/logout", struct{}{}, token)
	return err
}

// Refresh trades a stale token for a fresh one.
func (s *Service) Refresh(ctx context.Context, token string) (*Login, error) {
	env, err := s.client.Post(ctx, "/auth/refresh", struct{}{}, token)
	if err != nil {
		return nil, err
	}
	var l Login
	if err := env.Decode(&l); err != nil {
		return nil, err
	}
	return &l, nil
}
