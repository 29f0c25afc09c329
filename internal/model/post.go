package model

import (
	"context"
	"time"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id int64) (Post, error)
	Update(ctx context.Context, id int64, params PostParams) (Post, error)
	Delete(ctx context.Context, id int64) error
	ListRecent(ctx context.Context, limit int) ([]Post, error)
	SearchByTitle(ctx context.Context, query string) ([]Post, error)
	ToggleLike(ctx context.Context, id int64, email string) (Post, error)
}

// Post represents a stored post. Likes is derived from LikedBy and is never
// set independently. AuthorEmail is a loose reference, orphans are tolerated.
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url"`
	VideoURL    string    `json:"video_url"`
	Links       []string  `json:"links"`
	Likes       int       `json:"likes"`
	LikedBy     []string  `json:"liked_by"`
	CreatedAt   time.Time `json:"created_date"`
	AuthorEmail string    `json:"author_email"`
}

// PostParams carries the caller-editable fields of a post. Links are stored
// verbatim, duplicates and empty values included.
type PostParams struct {
	Title    string
	Content  string
	ImageURL string
	VideoURL string
	Links    []string
}
