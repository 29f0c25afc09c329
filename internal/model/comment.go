package model

import (
	"context"
	"time"
)

// CommentStore defines persistence operations for comments.
type CommentStore interface {
	Create(ctx context.Context, comment Comment) (Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
}

// Comment represents a stored comment. PostID is not checked against an
// existing post. Author fields are caller-supplied and stored verbatim.
type Comment struct {
	ID           int64     `json:"id"`
	PostID       int64     `json:"post_id"`
	Content      string    `json:"content"`
	AuthorName   string    `json:"author_name"`
	AuthorEmail  string    `json:"author_email"`
	AuthorAvatar string    `json:"author_avatar"`
	CreatedAt    time.Time `json:"created_date"`
}

// CommentParams carries the fields accepted when creating a comment.
type CommentParams struct {
	PostID       int64
	Content      string
	AuthorName   string
	AuthorEmail  string
	AuthorAvatar string
}
