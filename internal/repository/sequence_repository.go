package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"skolmaten/internal/model"
)

// CommentSequence names the counter that hands out comment ids.
const CommentSequence = "comments"

// SequenceRepository hands out monotonic ids that survive row deletion.
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

type sequenceRepository struct {
	db *gorm.DB
}

// NewSequenceRepository creates a new sequence repository.
func NewSequenceRepository(db *gorm.DB) SequenceRepository {
	return &sequenceRepository{db: db}
}

// Next returns the next value of the named counter. The first value is 0.
func (r *sequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		value, err = nextValue(tx, name)
		return err
	})
	return value, err
}

// nextValue bumps the counter and reads it back; tx must be a transaction.
func nextValue(tx *gorm.DB, name string) (int64, error) {
	seq := model.Sequence{Name: name, Value: 0}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": gorm.Expr("id_sequences.value + 1")}),
	}).Create(&seq).Error; err != nil {
		return 0, err
	}

	var current model.Sequence
	if err := tx.Where("name = ?", name).First(&current).Error; err != nil {
		return 0, err
	}
	return current.Value, nil
}
