package model

import "time"

// DeletedCommentText replaces the value of a soft-deleted comment.
const DeletedCommentText = "<Deleted>"

// Comment is a single entry of a per-day comment thread.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Year      int       `json:"year" gorm:"not null;index:idx_comments_day,priority:1"`
	Week      int       `json:"week" gorm:"not null;index:idx_comments_day,priority:2"`
	Weekday   int       `json:"weekday" gorm:"not null;index:idx_comments_day,priority:3"`
	AuthorID  int64     `json:"author_id" gorm:"not null;index"`
	Value     string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName pins the table name.
func (Comment) TableName() string { return "comments" }

// IsDeleted reports whether the comment has been soft-deleted.
func (c *Comment) IsDeleted() bool {
	return c.Value == DeletedCommentText
}

// CommentView is a comment joined with its author's current names.
type CommentView struct {
	Comment
	AuthorName    string `json:"author"`
	AuthorDisplay string `json:"name"`
}

// GetUserID exposes the author for ownership checks.
func (c *Comment) GetUserID() int64 { return c.AuthorID }
