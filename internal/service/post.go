package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/clubfeed-server/internal/logger"
	"github.com/dtroode/clubfeed-server/internal/model"
)

// recentPostsLimit caps the default feed listing.
const recentPostsLimit = 100

type Post struct {
	postStore model.PostStore
	logger    *logger.Logger
}

func NewPost(postStore model.PostStore, logger *logger.Logger) *Post {
	return &Post{
		postStore: postStore,
		logger:    logger,
	}
}

func (s *Post) Create(ctx context.Context, author model.User, params model.PostParams) (model.Post, error) {
	post := model.Post{
		Title:       params.Title,
		Content:     params.Content,
		ImageURL:    params.ImageURL,
		VideoURL:    params.VideoURL,
		Links:       params.Links,
		Likes:       0,
		LikedBy:     []string{},
		CreatedAt:   time.Now(),
		AuthorEmail: author.Email,
	}
	if post.Links == nil {
		post.Links = []string{}
	}

	created, err := s.postStore.Create(ctx, post)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("Post service: post created",
		"post_id", created.ID,
		"author_email", created.AuthorEmail)

	return created, nil
}

func (s *Post) Update(ctx context.Context, id int64, params model.PostParams) (model.Post, error) {
	updated, err := s.postStore.Update(ctx, id, params)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return updated, nil
}

func (s *Post) Delete(ctx context.Context, id int64) error {
	if err := s.postStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

func (s *Post) ListRecent(ctx context.Context) ([]model.Post, error) {
	posts, err := s.postStore.ListRecent(ctx, recentPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent posts: %w", err)
	}

	return posts, nil
}

// Search matches the query as a title substring. An empty query matches all
// posts; results are newest first with no cap.
func (s *Post) Search(ctx context.Context, query string) ([]model.Post, error) {
	posts, err := s.postStore.SearchByTitle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return posts, nil
}

// ToggleLike likes the post on behalf of email, or removes the like when one
// is already present. The like count always equals the liked_by set size.
func (s *Post) ToggleLike(ctx context.Context, id int64, email string) (model.Post, error) {
	post, err := s.postStore.ToggleLike(ctx, id, email)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to toggle like: %w", err)
	}

	return post, nil
}
