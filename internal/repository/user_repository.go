package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"skolmaten/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	CreateWithID(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByName(ctx context.Context, name string) (*model.User, error)
	FindByToken(ctx context.Context, token string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	SetToken(ctx context.Context, id int64, token string, issuedAt time.Time) error
	ClearToken(ctx context.Context, token string) error
	ClearUserToken(ctx context.Context, id int64) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create assigns the next free id (max+1, starting at 0) and inserts the user
// in one transaction.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int64
		if err := tx.Model(&model.User{}).Select("COALESCE(MAX(id), -1) + 1").Scan(&next).Error; err != nil {
			return err
		}
		user.ID = next
		return tx.Create(user).Error
	})
}

// CreateWithID inserts the user with the id already set on it.
func (r *userRepository) CreateWithID(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByToken(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update writes the given columns. A nil value stores NULL.
func (r *userRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// SetToken overwrites whatever token the user held before.
func (r *userRepository) SetToken(ctx context.Context, id int64, token string, issuedAt time.Time) error {
	return r.Update(ctx, id, map[string]interface{}{
		"token":           token,
		"token_issued_at": issuedAt,
	})
}

// ClearToken drops token from whichever user holds it. Unknown tokens are a no-op.
func (r *userRepository) ClearToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("token = ?", token).
		Updates(map[string]interface{}{"token": nil, "token_issued_at": nil}).Error
}

func (r *userRepository) ClearUserToken(ctx context.Context, id int64) error {
	return r.Update(ctx, id, map[string]interface{}{"token": nil, "token_issued_at": nil})
}

// WithTransaction executes a function within a database transaction.
func (r *userRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &userRepository{db: tx})
	})
}
