package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/clubfeed-server/internal/logger"
	"github.com/dtroode/clubfeed-server/internal/model"
)

// CommentService defines business operations for comments.
type CommentService interface {
	Create(ctx context.Context, params model.CommentParams) (model.Comment, error)
	ListForPost(ctx context.Context, postID int64) ([]model.Comment, error)
}

// Comment handles HTTP endpoints for comments.
type Comment struct {
	commentService CommentService
	logger         *logger.Logger
}

// NewComment creates a new Comment handler.
func NewComment(commentService CommentService, logger *logger.Logger) *Comment {
	return &Comment{
		commentService: commentService,
		logger:         logger,
	}
}

type commentRequest struct {
	PostID       int64  `json:"post_id"`
	Content      string `json:"content"`
	AuthorName   string `json:"author_name"`
	AuthorEmail  string `json:"author_email"`
	AuthorAvatar string `json:"author_avatar"`
}

// ListForPost returns a post's comments, newest first.
func (h *Comment) ListForPost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("postID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	comments, err := h.commentService.ListForPost(c.Request.Context(), postID)
	if err != nil {
		h.logger.Error("Comment handler: list failed",
			"post_id", postID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	if comments == nil {
		comments = []model.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}

// Create stores a comment. Author fields are taken from the request body as
// supplied, independent of the resolved identity.
func (h *Comment) Create(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), model.CommentParams{
		PostID:       req.PostID,
		Content:      req.Content,
		AuthorName:   req.AuthorName,
		AuthorEmail:  req.AuthorEmail,
		AuthorAvatar: req.AuthorAvatar,
	})
	if err != nil {
		h.logger.Error("Comment handler: create failed", "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}
