package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/clubfeed-server/internal/api/http/middleware"
	"github.com/dtroode/clubfeed-server/internal/logger"
	"github.com/dtroode/clubfeed-server/internal/model"
)

// PostService defines business operations for posts and likes.
type PostService interface {
	Create(ctx context.Context, author model.User, params model.PostParams) (model.Post, error)
	Update(ctx context.Context, id int64, params model.PostParams) (model.Post, error)
	Delete(ctx context.Context, id int64) error
	ListRecent(ctx context.Context) ([]model.Post, error)
	Search(ctx context.Context, query string) ([]model.Post, error)
	ToggleLike(ctx context.Context, id int64, email string) (model.Post, error)
}

// Post handles HTTP endpoints for posts.
type Post struct {
	postService PostService
	logger      *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, logger *logger.Logger) *Post {
	return &Post{
		postService: postService,
		logger:      logger,
	}
}

type postRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	ImageURL string   `json:"image_url"`
	VideoURL string   `json:"video_url"`
	Links    []string `json:"links"`
}

func (r postRequest) params() model.PostParams {
	return model.PostParams{
		Title:    r.Title,
		Content:  r.Content,
		ImageURL: r.ImageURL,
		VideoURL: r.VideoURL,
		Links:    r.Links,
	}
}

// List returns up to the 100 most recent posts, newest first.
func (h *Post) List(c *gin.Context) {
	posts, err := h.postService.ListRecent(c.Request.Context())
	if err != nil {
		h.logger.Error("Post handler: list failed", "error", err.Error())
		handleError(c, err)
		return
	}

	if posts == nil {
		posts = []model.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// Search returns posts whose title contains the q parameter, newest first.
func (h *Post) Search(c *gin.Context) {
	posts, err := h.postService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("Post handler: search failed", "error", err.Error())
		handleError(c, err)
		return
	}

	if posts == nil {
		posts = []model.Post{}
	}
	c.JSON(http.StatusOK, posts)
}

// Create stores a new post authored by the acting identity.
func (h *Post) Create(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	author, _ := middleware.CurrentUser(c)

	post, err := h.postService.Create(c.Request.Context(), author, req.params())
	if err != nil {
		h.logger.Error("Post handler: create failed", "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Update replaces a post's editable fields wholesale.
func (h *Post) Update(c *gin.Context) {
	id, err := postID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	post, err := h.postService.Update(c.Request.Context(), id, req.params())
	if err != nil {
		h.logger.Error("Post handler: update failed",
			"post_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete removes a post. Deleting a nonexistent id succeeds.
func (h *Post) Delete(c *gin.Context) {
	id, err := postID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("Post handler: delete failed",
			"post_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleLike flips the acting identity's like on a post and returns the
// updated post.
func (h *Post) ToggleLike(c *gin.Context) {
	id, err := postID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	user, _ := middleware.CurrentUser(c)

	post, err := h.postService.ToggleLike(c.Request.Context(), id, user.Email)
	if err != nil {
		h.logger.Error("Post handler: toggle like failed",
			"post_id", id,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func postID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
