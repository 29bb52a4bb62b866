package service

import (
	"context"

	"skolmaten/internal/auth"
	"skolmaten/internal/logging"
	"skolmaten/internal/model"
	"skolmaten/internal/repository"
)

// TokenService manages the single session token each user may hold.
type TokenService interface {
	IssueToken(ctx context.Context, userID int64) (string, error)
	ResolveToken(ctx context.Context, token string) (*model.Identity, error)
	Revoke(ctx context.Context, token string) error
	RevokeUser(ctx context.Context, userID int64) error
}

type tokenService struct {
	users  repository.UserRepository
	signer *auth.JWTService
	log    logging.Logger
}

// NewTokenService creates a new token service.
func NewTokenService(users repository.UserRepository, signer *auth.JWTService, log logging.Logger) TokenService {
	return &tokenService{
		users:  users,
		signer: signer,
		log:    log.With("component", "tokens"),
	}
}

// IssueToken signs a fresh token and stores it on the user, replacing the
// previous one.
func (s *tokenService) IssueToken(ctx context.Context, userID int64) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", storageError("find user", err)
	}

	token, issuedAt, err := s.signer.GenerateSessionToken(user.ID, user.Name)
	if err != nil {
		return "", err
	}
	if err := s.users.SetToken(ctx, user.ID, token, issuedAt); err != nil {
		return "", storageError("store token", err)
	}

	s.log.Debug(ctx, "token issued", "user_id", user.ID)
	return token, nil
}

// ResolveToken returns the identity currently holding token, or nil when no
// user holds it. The store is read on every call.
func (s *tokenService) ResolveToken(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, nil
	}
	claims, err := s.signer.ValidateToken(token)
	if err != nil {
		return nil, nil
	}

	user, err := s.users.FindByToken(ctx, token)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, storageError("resolve token", err)
	}
	if user.ID != claims.UserID {
		return nil, nil
	}
	return user.Identity(), nil
}

// Revoke clears token from whoever holds it. Unknown tokens are a no-op.
func (s *tokenService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.users.ClearToken(ctx, token); err != nil {
		return storageError("revoke token", err)
	}
	return nil
}

// RevokeUser signs the user out everywhere.
func (s *tokenService) RevokeUser(ctx context.Context, userID int64) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return storageError("find user", err)
	}
	if err := s.users.ClearUserToken(ctx, userID); err != nil {
		return storageError("revoke user token", err)
	}
	s.log.Info(ctx, "sessions revoked", "user_id", userID)
	return nil
}
