package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/firewatch-nepal/portal/internal/core/domain"
	"github.com/firewatch-nepal/portal/internal/core/ports"
)

// AuthService exchanges credentials with the backend and records the result
// in the caller's session store.
type AuthService struct {
	gateway ports.AuthGateway
	log     zerolog.Logger
}

func NewAuthService(gateway ports.AuthGateway, log zerolog.Logger) *AuthService {
	return &AuthService{gateway: gateway, log: log}
}

// Login authenticates against the backend endpoint for role and, on success,
// logs the store in. Any existing session of the other role is replaced.
func (s *AuthService) Login(ctx context.Context, store *SessionStore, role domain.Role, username, password string) (domain.Session, error) {
	if !role.Valid() {
		return domain.Session{}, domain.NewValidationError("role must be one of: admin user")
	}
	if strings.TrimSpace(username) == "" || password == "" {
		return domain.Session{}, domain.NewValidationError("username and password are required")
	}

	token, err := s.gateway.Login(ctx, role, username, password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	if err := store.Login(ctx, token, role); err != nil {
		return domain.Session{}, err
	}

	s.log.Info().Str("client_id", store.ClientID()).Str("role", string(role)).Msg("client logged in")
	return store.Current(), nil
}

// ForgotPassword asks the backend to send a reset code to email.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", domain.NewValidationError("email is required")
	}
	msg, err := s.gateway.ForgotPassword(ctx, email)
	if err != nil {
		return "", fmt.Errorf("forgot password: %w", err)
	}
	return msg, nil
}

// ResetPassword sets a new password using the emailed one-time code.
func (s *AuthService) ResetPassword(ctx context.Context, email, otp, newPassword, confirm string) (string, error) {
	var fields []string
	if strings.TrimSpace(email) == "" {
		fields = append(fields, "email is required")
	}
	if strings.TrimSpace(otp) == "" {
		fields = append(fields, "otp is required")
	}
	if newPassword == "" {
		fields = append(fields, "new_password is required")
	} else if newPassword != confirm {
		fields = append(fields, "passwords do not match")
	}
	if len(fields) > 0 {
		return "", domain.NewValidationError(fields...)
	}

	msg, err := s.gateway.ResetPassword(ctx, email, otp, newPassword)
	if err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}
	return msg, nil
}
