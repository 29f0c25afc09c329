package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/clubfeed-server/internal/logger"
	"github.com/dtroode/clubfeed-server/internal/model"
)

type Comment struct {
	commentStore model.CommentStore
	logger       *logger.Logger
}

func NewComment(commentStore model.CommentStore, logger *logger.Logger) *Comment {
	return &Comment{
		commentStore: commentStore,
		logger:       logger,
	}
}

// Create stores a comment with a server-side timestamp. Author fields come
// from the caller and are stored as supplied; the parent post is not checked
// for existence.
func (s *Comment) Create(ctx context.Context, params model.CommentParams) (model.Comment, error) {
	comment := model.Comment{
		PostID:       params.PostID,
		Content:      params.Content,
		AuthorName:   params.AuthorName,
		AuthorEmail:  params.AuthorEmail,
		AuthorAvatar: params.AuthorAvatar,
		CreatedAt:    time.Now(),
	}

	created, err := s.commentStore.Create(ctx, comment)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	return created, nil
}

func (s *Comment) ListForPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	comments, err := s.commentStore.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post: %w", err)
	}

	return comments, nil
}
