package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dtroode/clubfeed-server/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

const postColumns = `id, title, content, image_url, video_url, links, likes, liked_by, created_at, author_email`

func scanPost(row pgx.Row) (model.Post, error) {
	var post model.Post
	err := row.Scan(
		&post.ID, &post.Title, &post.Content, &post.ImageURL, &post.VideoURL,
		&post.Links, &post.Likes, &post.LikedBy, &post.CreatedAt, &post.AuthorEmail,
	)
	if err != nil {
		return model.Post{}, err
	}

	// JSON clients expect arrays, never null.
	if post.Links == nil {
		post.Links = []string{}
	}
	if post.LikedBy == nil {
		post.LikedBy = []string{}
	}

	return post, nil
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `INSERT INTO posts (title, content, image_url, video_url, links, likes, liked_by, created_at, author_email)
			  VALUES ($1, $2, $3, $4, $5, 0, '{}', $6, $7)
			  RETURNING ` + postColumns

	links := post.Links
	if links == nil {
		links = []string{}
	}

	savedPost, err := scanPost(r.db.QueryRow(ctx, query,
		post.Title, post.Content, post.ImageURL, post.VideoURL,
		links, post.CreatedAt, post.AuthorEmail,
	))
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return savedPost, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// Update replaces the caller-editable fields wholesale. Author, like state
// and creation time are never touched.
func (r *PostRepository) Update(ctx context.Context, id int64, params model.PostParams) (model.Post, error) {
	query := `UPDATE posts SET title = $2, content = $3, image_url = $4, video_url = $5, links = $6
			  WHERE id = $1
			  RETURNING ` + postColumns

	links := params.Links
	if links == nil {
		links = []string{}
	}

	post, err := scanPost(r.db.QueryRow(ctx, query,
		id, params.Title, params.Content, params.ImageURL, params.VideoURL, links,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// Delete removes the post row. Deleting a nonexistent id is not an error.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM posts WHERE id = $1`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

func (r *PostRepository) ListRecent(ctx context.Context, limit int) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func (r *PostRepository) SearchByTitle(ctx context.Context, query string) ([]model.Post, error) {
	sql := `SELECT ` + postColumns + ` FROM posts WHERE title ILIKE '%' || $1 || '%' ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sql, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// ToggleLike flips the caller's membership in liked_by and recomputes the
// like count from the resulting set, all in one statement so concurrent
// toggles on the same post serialize on the row.
func (r *PostRepository) ToggleLike(ctx context.Context, id int64, email string) (model.Post, error) {
	query := `UPDATE posts
			  SET liked_by = CASE WHEN $2 = ANY (liked_by)
								  THEN array_remove(liked_by, $2)
								  ELSE array_append(liked_by, $2) END,
				  likes = cardinality(CASE WHEN $2 = ANY (liked_by)
										   THEN array_remove(liked_by, $2)
										   ELSE array_append(liked_by, $2) END)
			  WHERE id = $1
			  RETURNING ` + postColumns

	post, err := scanPost(r.db.QueryRow(ctx, query, id, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to toggle like: %w", err)
	}

	return post, nil
}

func collectPosts(rows pgx.Rows) ([]model.Post, error) {
	var posts []model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
