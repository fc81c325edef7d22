package api

import (
	"net/http"
	"strconv"

	"github.com/blog-platform-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// FeedHandler serves the read-side listings
type FeedHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(services *service.Services, log zerolog.Logger) *FeedHandler {
	return &FeedHandler{
		services: services,
		log:      log.With().Str("handler", "feed").Logger(),
	}
}

// GlobalFeed handles GET /v1/posts
func (h *FeedHandler) GlobalFeed(c *gin.Context) {
	page, err := h.services.Feed.GlobalFeed(c.Request.Context(), pageParam(c))
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load global feed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load feed"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// CategoryFeed handles GET /v1/categories/:slug/posts
func (h *FeedHandler) CategoryFeed(c *gin.Context) {
	slug := c.Param("slug")

	page, err := h.services.Feed.CategoryFeed(c.Request.Context(), slug, pageParam(c))
	if err != nil {
		h.log.Error().Err(err).Str("slug", slug).Msg("Failed to load category feed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load feed"})
		return
	}
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// ProfileFeed handles GET /v1/profiles/:username/posts
func (h *FeedHandler) ProfileFeed(c *gin.Context) {
	username := c.Param("username")

	page, err := h.services.Feed.ProfileFeed(c.Request.Context(), username, actorID(c), pageParam(c))
	if err != nil {
		h.log.Error().Err(err).Str("username", username).Msg("Failed to load profile feed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load feed"})
		return
	}
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// PostDetail handles GET /v1/posts/:id
func (h *FeedHandler) PostDetail(c *gin.Context) {
	postID := c.Param("id")

	detail, err := h.services.Feed.PostDetail(c.Request.Context(), postID, actorID(c))
	if err != nil {
		h.log.Error().Err(err).Str("post_id", postID).Msg("Failed to load post detail")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load post"})
		return
	}
	if detail == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Categories handles GET /v1/categories
func (h *FeedHandler) Categories(c *gin.Context) {
	categories, err := h.services.Feed.Categories(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list categories")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// Locations handles GET /v1/locations
func (h *FeedHandler) Locations(c *gin.Context) {
	locations, err := h.services.Feed.Locations(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list locations")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list locations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

// pageParam reads the ?page= query parameter, defaulting to the first page
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
