package repository

import (
	"context"

	"gorm.io/gorm"

	"skolmaten/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id int64) (*model.Comment, error)
	ListForDay(ctx context.Context, year, week, weekday int) ([]model.CommentView, error)
	ListAll(ctx context.Context) ([]model.CommentView, error)
	CountForWeek(ctx context.Context, year, week int) (map[int]int, error)
	UpdateValue(ctx context.Context, id int64, value string) error
	Delete(ctx context.Context, id int64) (bool, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CommentRepository) error) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create takes the next id from the comment sequence and inserts the comment
// in the same transaction.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextValue(tx, CommentSequence)
		if err != nil {
			return err
		}
		comment.ID = id
		return tx.Create(comment).Error
	})
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListForDay returns the day's thread in insertion order with the authors'
// current names.
func (r *commentRepository) ListForDay(ctx context.Context, year, week, weekday int) ([]model.CommentView, error) {
	var views []model.CommentView
	if err := r.withAuthors(ctx).
		Where("comments.year = ? AND comments.week = ? AND comments.weekday = ?", year, week, weekday).
		Order("comments.id ASC").
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *commentRepository) ListAll(ctx context.Context) ([]model.CommentView, error) {
	var views []model.CommentView
	if err := r.withAuthors(ctx).
		Order("comments.id ASC").
		Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// CountForWeek returns comment counts keyed by weekday. Days without
// comments are absent from the map.
func (r *commentRepository) CountForWeek(ctx context.Context, year, week int) (map[int]int, error) {
	var rows []struct {
		Weekday int
		Total   int
	}
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Select("weekday, COUNT(*) AS total").
		Where("year = ? AND week = ?", year, week).
		Group("weekday").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.Weekday] = row.Total
	}
	return counts, nil
}

func (r *commentRepository) UpdateValue(ctx context.Context, id int64, value string) error {
	return r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		Update("value", value).Error
}

// Delete removes the row and reports whether one existed.
func (r *commentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// WithTransaction executes a function within a database transaction.
func (r *commentRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CommentRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &commentRepository{db: tx})
	})
}

func (r *commentRepository) withAuthors(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("comments").
		Select("comments.*, users.name AS author_name, users.display_name AS author_display").
		Joins("LEFT JOIN users ON users.id = comments.author_id")
}
