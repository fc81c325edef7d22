package api

import (
	"net/http"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PostHandler serves post mutations
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// CreatePost handles POST /v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.services.Blog.CreatePost(c.Request.Context(), actorID(c), &req)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create post"})
		return
	}

	dispatchMutation(c, result)
}

// UpdatePost handles PUT /v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req models.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.services.Blog.UpdatePost(c.Request.Context(), actorID(c), c.Param("id"), &req)
	if err != nil {
		h.log.Error().Err(err).Str("post_id", c.Param("id")).Msg("Failed to update post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update post"})
		return
	}

	dispatchMutation(c, result)
}

// DeletePost handles DELETE /v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	result, err := h.services.Blog.DeletePost(c.Request.Context(), actorID(c), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Str("post_id", c.Param("id")).Msg("Failed to delete post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}

	dispatchMutation(c, result)
}

// dispatchMutation turns a tagged mutation result into a response:
// applied and denied both become a redirect to the result's location,
// not-found a 404, and a validation failure a 422 with field errors so
// the rendering layer can re-draw the form.
func dispatchMutation(c *gin.Context, result *models.MutationResult) {
	switch result.Outcome {
	case models.OutcomeApplied, models.OutcomeDenied:
		c.Redirect(http.StatusSeeOther, result.RedirectTo)
	case models.OutcomeNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case models.OutcomeInvalid:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": result.FieldErrors})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unknown outcome"})
	}
}
