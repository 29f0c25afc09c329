package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/clubfeed-server/internal/model"
)

var _ model.CommentStore = (*CommentRepository)(nil)

type CommentRepository struct {
	db *Connection
}

func NewCommentRepository(db *Connection) *CommentRepository {
	return &CommentRepository{
		db: db,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	query := `INSERT INTO comments (post_id, content, author_name, author_email, author_avatar, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, post_id, content, author_name, author_email, author_avatar, created_at`

	var savedComment model.Comment
	err := r.db.QueryRow(ctx, query,
		comment.PostID, comment.Content, comment.AuthorName, comment.AuthorEmail,
		comment.AuthorAvatar, comment.CreatedAt,
	).Scan(
		&savedComment.ID, &savedComment.PostID, &savedComment.Content, &savedComment.AuthorName,
		&savedComment.AuthorEmail, &savedComment.AuthorAvatar, &savedComment.CreatedAt,
	)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	return savedComment, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	query := `SELECT id, post_id, content, author_name, author_email, author_avatar, created_at
			  FROM comments WHERE post_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var comment model.Comment
		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.Content, &comment.AuthorName,
			&comment.AuthorEmail, &comment.AuthorAvatar, &comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
