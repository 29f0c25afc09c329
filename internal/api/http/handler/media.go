package handler

import (
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/clubfeed-server/internal/logger"
	"github.com/dtroode/clubfeed-server/internal/model"
)

// Media handles upload and download of media blobs referenced by posts and
// avatars. The references stored on posts stay plain strings; this endpoint
// only provides somewhere for them to point.
type Media struct {
	storage model.Storage
	logger  *logger.Logger
}

// NewMedia creates a new Media handler.
func NewMedia(storage model.Storage, logger *logger.Logger) *Media {
	return &Media{
		storage: storage,
		logger:  logger,
	}
}

// Upload stores a multipart file and returns the key and URL to reference it.
func (h *Media) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
		return
	}
	defer file.Close()

	key := "media/" + uuid.NewString() + path.Ext(header.Filename)
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := h.storage.Upload(c.Request.Context(), key, file, header.Size, contentType); err != nil {
		h.logger.Error("Media handler: upload failed",
			"key", key,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "url": "/api/media/" + key})
}

// Download streams a stored media blob.
func (h *Media) Download(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	exists, err := h.storage.Exists(c.Request.Context(), key)
	if err != nil {
		h.logger.Error("Media handler: stat failed",
			"key", key,
			"error", err.Error())
		handleError(c, err)
		return
	}
	if !exists {
		handleError(c, model.ErrNotFound)
		return
	}

	reader, err := h.storage.Download(c.Request.Context(), key)
	if err != nil {
		h.logger.Error("Media handler: download failed",
			"key", key,
			"error", err.Error())
		handleError(c, err)
		return
	}
	defer reader.Close()

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		h.logger.Error("Media handler: streaming failed",
			"key", key,
			"error", err.Error())
	}
}
