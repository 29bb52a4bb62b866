package service

import (
	"context"
	"fmt"

	"skolmaten/internal/model"
)

// AuthService handles sign-in and sign-out.
type AuthService interface {
	SignIn(ctx context.Context, name, password string) (token string, identity *model.Identity, err error)
	SignOut(ctx context.Context, token string) error
}

type authService struct {
	credentials CredentialService
	tokens      TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(credentials CredentialService, tokens TokenService) AuthService {
	return &authService{
		credentials: credentials,
		tokens:      tokens,
	}
}

// SignIn verifies the credentials and issues a new session token, which
// invalidates any token the user held before.
func (s *authService) SignIn(ctx context.Context, name, password string) (string, *model.Identity, error) {
	user, err := s.credentials.VerifyCredentials(ctx, name, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.IssueToken(ctx, user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user.Identity(), nil
}

// SignOut invalidates token. Signing out twice is not an error.
func (s *authService) SignOut(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}
