package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skolmaten/internal/model"
)

// MenuRepository stores one row of five weekday texts per ISO week.
type MenuRepository interface {
	UpsertDay(ctx context.Context, year, week, weekday int, text string) error
	Find(ctx context.Context, year, week int) (*model.MenuWeek, error)
	FindYear(ctx context.Context, year int) ([]model.MenuWeek, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MenuRepository) error) error
}

type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository.
func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

// UpsertDay writes a single weekday column, creating the week row if needed.
// The other four columns of an existing row are left untouched.
func (r *menuRepository) UpsertDay(ctx context.Context, year, week, weekday int, text string) error {
	column, ok := model.WeekdayColumn(weekday)
	if !ok {
		return fmt.Errorf("weekday %d has no column", weekday)
	}

	row := model.MenuWeek{Year: year, Week: week}
	row.Set(weekday, text)

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year"}, {Name: "week"}},
		DoUpdates: clause.AssignmentColumns([]string{column}),
	}).Create(&row).Error
}

// Find returns gorm.ErrRecordNotFound when the week has never been written.
func (r *menuRepository) Find(ctx context.Context, year, week int) (*model.MenuWeek, error) {
	var row model.MenuWeek
	if err := r.db.WithContext(ctx).
		Where("year = ? AND week = ?", year, week).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindYear returns every stored week of year, ordered by week.
func (r *menuRepository) FindYear(ctx context.Context, year int) ([]model.MenuWeek, error) {
	var rows []model.MenuWeek
	if err := r.db.WithContext(ctx).
		Where("year = ?", year).
		Order("week ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// WithTransaction executes a function within a database transaction.
func (r *menuRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MenuRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &menuRepository{db: tx})
	})
}
