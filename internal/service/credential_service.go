package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skolmaten/internal/auth"
	domainerrors "skolmaten/internal/errors"
	"skolmaten/internal/logging"
	"skolmaten/internal/model"
	"skolmaten/internal/repository"
)

const (
	deletedDisplayName  = "Deleted User"
	deletedPasswordHash = "deletedaccount"
)

// CredentialService owns accounts: registration, password checks and
// profile edits. It does not issue tokens.
type CredentialService interface {
	Register(ctx context.Context, name, password string, level model.Level) (*model.User, error)
	VerifyCredentials(ctx context.Context, name, password string) (*model.User, error)
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	SetDisplayName(ctx context.Context, userID int64, display string) error
	SetLoginName(ctx context.Context, userID int64, name string) error
	SetPermissionLevel(ctx context.Context, userID int64, level model.Level) error
	SoftDelete(ctx context.Context, userID int64) error
	Get(ctx context.Context, userID int64) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	EnsureAdmin(ctx context.Context, name, password string) (bool, error)
}

type credentialService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	log    logging.Logger
}

// NewCredentialService creates a new credential service.
func NewCredentialService(users repository.UserRepository, hasher *auth.PasswordHasher, log logging.Logger) CredentialService {
	return &credentialService{
		users:  users,
		hasher: hasher,
		log:    log.With("component", "credentials"),
	}
}

// CanonicalName lower-cases name and drops everything outside [a-z0-9_].
func CanonicalName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Register creates an account. The display name is the name as typed.
func (s *credentialService) Register(ctx context.Context, name, password string, level model.Level) (*model.User, error) {
	canonical := CanonicalName(name)
	if canonical == "" {
		return nil, domainerrors.ErrInvalidName
	}
	if !level.Valid() {
		return nil, domainerrors.ErrInvalidLevel
	}

	existing, err := s.users.FindByName(ctx, canonical)
	if err == nil && existing != nil {
		return nil, domainerrors.ErrDuplicateUser
	}
	if err != nil && !isNotFound(err) {
		return nil, storageError("check user existence", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         canonical,
		DisplayName:  name,
		PasswordHash: hash,
		AuthLevel:    level,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, domainerrors.ErrDuplicateUser
		}
		return nil, storageError("create user", err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID, "name", user.Name, "level", level.String())
	return user, nil
}

// VerifyCredentials returns the user when password matches. Unknown and
// deleted users fail exactly like a wrong password.
func (s *credentialService) VerifyCredentials(ctx context.Context, name, password string) (*model.User, error) {
	user, err := s.users.FindByName(ctx, CanonicalName(name))
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, storageError("find user", err)
	}
	if user.Deleted || !s.hasher.Verify(user.PasswordHash, password) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	return user, nil
}

// ChangePassword replaces the hash once oldPassword verifies. The admin
// account may change its password like anyone else.
func (s *credentialService) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return storageError("find user", err)
	}
	if !s.hasher.Verify(user.PasswordHash, oldPassword) {
		return domainerrors.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.Update(ctx, userID, map[string]interface{}{"password_hash": hash}); err != nil {
		return storageError("update password", err)
	}

	s.log.Info(ctx, "password changed", "user_id", userID)
	return nil
}

func (s *credentialService) SetDisplayName(ctx context.Context, userID int64, display string) error {
	display = strings.TrimSpace(display)
	if display == "" {
		return domainerrors.ErrInvalidName
	}
	return s.users.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		if _, err := repo.FindByID(ctx, userID); err != nil {
			return storageError("find user", err)
		}
		if err := repo.Update(ctx, userID, map[string]interface{}{"display_name": display}); err != nil {
			return storageError("update display name", err)
		}
		return nil
	})
}

// SetLoginName renames the account. The new name is canonicalised and must
// not belong to anybody else.
func (s *credentialService) SetLoginName(ctx context.Context, userID int64, name string) error {
	canonical := CanonicalName(name)
	if canonical == "" {
		return domainerrors.ErrInvalidName
	}

	err := s.users.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		if _, err := repo.FindByID(ctx, userID); err != nil {
			return storageError("find user", err)
		}

		holder, err := repo.FindByName(ctx, canonical)
		switch {
		case err == nil && holder.ID == userID:
			return nil
		case err == nil:
			return domainerrors.ErrNameTaken
		case !isNotFound(err):
			return storageError("check name", err)
		}

		if err := repo.Update(ctx, userID, map[string]interface{}{"name": canonical}); err != nil {
			if isDuplicate(err) {
				return domainerrors.ErrNameTaken
			}
			return storageError("update login name", err)
		}
		return nil
	})
	if err == nil {
		s.log.Info(ctx, "login name changed", "user_id", userID, "name", canonical)
	}
	return err
}

func (s *credentialService) SetPermissionLevel(ctx context.Context, userID int64, level model.Level) error {
	if userID == model.AdminID {
		return domainerrors.ErrAdminProtected
	}
	if !level.Valid() {
		return domainerrors.ErrInvalidLevel
	}

	err := s.users.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		if _, err := repo.FindByID(ctx, userID); err != nil {
			return storageError("find user", err)
		}
		if err := repo.Update(ctx, userID, map[string]interface{}{"auth_level": level}); err != nil {
			return storageError("update permission level", err)
		}
		return nil
	})
	if err == nil {
		s.log.Info(ctx, "permission level changed", "user_id", userID, "level", level.String())
	}
	return err
}

// SoftDelete redacts the account but keeps its row and id, so comments keep
// a valid author.
func (s *credentialService) SoftDelete(ctx context.Context, userID int64) error {
	if userID == model.AdminID {
		return domainerrors.ErrAdminProtected
	}

	err := s.users.WithTransaction(ctx, func(ctx context.Context, repo repository.UserRepository) error {
		if _, err := repo.FindByID(ctx, userID); err != nil {
			return storageError("find user", err)
		}
		fields := map[string]interface{}{
			"name":            fmt.Sprintf("deleted_user%d", userID),
			"display_name":    deletedDisplayName,
			"password_hash":   deletedPasswordHash,
			"auth_level":      model.LevelNull,
			"deleted":         true,
			"token":           nil,
			"token_issued_at": nil,
		}
		if err := repo.Update(ctx, userID, fields); err != nil {
			return storageError("soft delete user", err)
		}
		return nil
	})
	if err == nil {
		s.log.Info(ctx, "user deleted", "user_id", userID)
	}
	return err
}

func (s *credentialService) Get(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, storageError("find user", err)
	}
	return user, nil
}

func (s *credentialService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storageError("list users", err)
	}
	return users, nil
}

// EnsureAdmin seeds the admin account (id 0) if it does not exist yet and
// reports whether it was created.
func (s *credentialService) EnsureAdmin(ctx context.Context, name, password string) (bool, error) {
	_, err := s.users.FindByID(ctx, model.AdminID)
	if err == nil {
		return false, nil
	}
	if !isNotFound(err) {
		return false, storageError("find admin", err)
	}

	canonical := CanonicalName(name)
	if canonical == "" {
		return false, domainerrors.ErrInvalidName
	}
	if password == "" {
		return false, errors.New("admin password must not be empty")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, err
	}
	admin := &model.User{
		ID:           model.AdminID,
		Name:         canonical,
		DisplayName:  name,
		PasswordHash: hash,
		AuthLevel:    model.LevelAdmin,
	}
	if err := s.users.CreateWithID(ctx, admin); err != nil {
		if isDuplicate(err) {
			return false, domainerrors.ErrDuplicateUser
		}
		return false, storageError("create admin", err)
	}

	s.log.Info(ctx, "admin account seeded", "name", canonical)
	return true, nil
}
