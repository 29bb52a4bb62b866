package service

import (
	"context"
	"strings"

	domainerrors "skolmaten/internal/errors"
	"skolmaten/internal/logging"
	"skolmaten/internal/model"
	"skolmaten/internal/repository"
)

// CommentService manages the per-day comment threads.
type CommentService interface {
	Add(ctx context.Context, year, week, weekday int, authorID int64, text string) (*model.Comment, error)
	ListForDay(ctx context.Context, year, week, weekday int) ([]model.CommentView, error)
	Get(ctx context.Context, id int64) (*model.Comment, error)
	ListAll(ctx context.Context) ([]model.CommentView, error)
	CountForWeek(ctx context.Context, year, week int) ([5]int, error)
	SoftDelete(ctx context.Context, id int64) error
	HardDelete(ctx context.Context, id int64) error
}

type commentService struct {
	comments repository.CommentRepository
	log      logging.Logger
}

// NewCommentService creates a new comment service.
func NewCommentService(comments repository.CommentRepository, log logging.Logger) CommentService {
	return &commentService{
		comments: comments,
		log:      log.With("component", "comments"),
	}
}

// Add stores a trimmed comment under a fresh id.
func (s *commentService) Add(ctx context.Context, year, week, weekday int, authorID int64, text string) (*model.Comment, error) {
	if err := validateDay(year, week, weekday); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrEmptyComment
	}

	comment := &model.Comment{
		Year:     year,
		Week:     week,
		Weekday:  weekday,
		AuthorID: authorID,
		Value:    text,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, storageError("create comment", err)
	}

	s.log.Debug(ctx, "comment added", "comment_id", comment.ID, "author_id", authorID)
	return comment, nil
}

// ListForDay returns the thread in insertion order. Author names are the
// current ones, not a snapshot taken when the comment was written.
func (s *commentService) ListForDay(ctx context.Context, year, week, weekday int) ([]model.CommentView, error) {
	if err := validateDay(year, week, weekday); err != nil {
		return nil, err
	}
	views, err := s.comments.ListForDay(ctx, year, week, weekday)
	if err != nil {
		return nil, storageError("list comments", err)
	}
	if views == nil {
		views = []model.CommentView{}
	}
	return views, nil
}

func (s *commentService) Get(ctx context.Context, id int64) (*model.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, storageError("find comment", err)
	}
	return comment, nil
}

func (s *commentService) ListAll(ctx context.Context) ([]model.CommentView, error) {
	views, err := s.comments.ListAll(ctx)
	if err != nil {
		return nil, storageError("list comments", err)
	}
	if views == nil {
		views = []model.CommentView{}
	}
	return views, nil
}

// CountForWeek returns the number of comments per weekday, Monday first.
func (s *commentService) CountForWeek(ctx context.Context, year, week int) ([5]int, error) {
	var out [5]int
	if err := validateWeek(year, week); err != nil {
		return out, err
	}
	counts, err := s.comments.CountForWeek(ctx, year, week)
	if err != nil {
		return out, storageError("count comments", err)
	}
	for i := range out {
		out[i] = counts[i+1]
	}
	return out, nil
}

// SoftDelete replaces the text with the deleted marker and keeps the row.
func (s *commentService) SoftDelete(ctx context.Context, id int64) error {
	return s.comments.WithTransaction(ctx, func(ctx context.Context, repo repository.CommentRepository) error {
		if _, err := repo.FindByID(ctx, id); err != nil {
			return storageError("find comment", err)
		}
		if err := repo.UpdateValue(ctx, id, model.DeletedCommentText); err != nil {
			return storageError("soft delete comment", err)
		}
		return nil
	})
}

// HardDelete removes the row whatever its text is. Callers that want the
// soft-first rule must check IsDeleted themselves.
func (s *commentService) HardDelete(ctx context.Context, id int64) error {
	deleted, err := s.comments.Delete(ctx, id)
	if err != nil {
		return storageError("delete comment", err)
	}
	if !deleted {
		return domainerrors.ErrNotFound
	}
	s.log.Info(ctx, "comment removed", "comment_id", id)
	return nil
}
