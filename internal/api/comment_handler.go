package api

import (
	"net/http"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler serves comment mutations
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// CreateComment handles POST /v1/posts/:id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.services.Blog.CreateComment(c.Request.Context(), actorID(c), c.Param("id"), &req)
	if err != nil {
		h.log.Error().Err(err).Str("post_id", c.Param("id")).Msg("Failed to create comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		return
	}

	dispatchMutation(c, result)
}

// UpdateComment handles PUT /v1/posts/:id/comments/:comment_id
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.services.Blog.UpdateComment(c.Request.Context(), actorID(c), c.Param("id"), c.Param("comment_id"), &req)
	if err != nil {
		h.log.Error().Err(err).Str("comment_id", c.Param("comment_id")).Msg("Failed to update comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update comment"})
		return
	}

	dispatchMutation(c, result)
}

// DeleteComment handles DELETE /v1/posts/:id/comments/:comment_id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	result, err := h.services.Blog.DeleteComment(c.Request.Context(), actorID(c), c.Param("id"), c.Param("comment_id"))
	if err != nil {
		h.log.Error().Err(err).Str("comment_id", c.Param("comment_id")).Msg("Failed to delete comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete comment"})
		return
	}

	dispatchMutation(c, result)
}
