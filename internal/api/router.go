package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Context keys for the actor identity extracted from the access token
const (
	ctxActorID       = "actorID"
	ctxActorUsername = "actorUsername"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	feedHandler := NewFeedHandler(services, log)
	postHandler := NewPostHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	authHandler := NewAuthHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	v1.Use(actorMiddleware(services))
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/login", authHandler.LoginRequired)
		}

		// Public listings
		v1.GET("/posts", feedHandler.GlobalFeed)
		v1.GET("/posts/:id", feedHandler.PostDetail)
		v1.GET("/categories/:slug/posts", feedHandler.CategoryFeed)
		v1.GET("/profiles/:username/posts", feedHandler.ProfileFeed)

		// Taxonomy listings, for post-form choices
		v1.GET("/categories", feedHandler.Categories)
		v1.GET("/locations", feedHandler.Locations)

		// Mutations sit behind the authentication gate
		authed := v1.Group("")
		authed.Use(authRequired())
		{
			authed.POST("/posts", postHandler.CreatePost)
			authed.PUT("/posts/:id", postHandler.UpdatePost)
			authed.DELETE("/posts/:id", postHandler.DeletePost)

			authed.POST("/posts/:id/comments", commentHandler.CreateComment)
			authed.PUT("/posts/:id/comments/:comment_id", commentHandler.UpdateComment)
			authed.DELETE("/posts/:id/comments/:comment_id", commentHandler.DeleteComment)

			authed.PUT("/profile", authHandler.UpdateProfile)
		}
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "blog-platform-api",
	})
}

// actorMiddleware extracts the actor identity from a Bearer token when
// one is present. It never rejects: anonymous requests pass through with
// no actor set, and the visibility rules handle the rest.
func actorMiddleware(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := services.Auth.ValidateToken(parts[1]); err == nil {
					c.Set(ctxActorID, claims.UserID)
					c.Set(ctxActorUsername, claims.Username)
				}
			}
		}
		c.Next()
	}
}

// authRequired is the outer gate in front of every mutation: requests
// with no authenticated actor are sent to the login flow before any core
// logic runs
func authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actorID(c) == "" {
			c.Redirect(http.StatusSeeOther, service.LoginPath())
			c.Abort()
			return
		}
		c.Next()
	}
}

// actorID returns the authenticated actor's id, or "" for anonymous
func actorID(c *gin.Context) string {
	id, _ := c.Get(ctxActorID)
	s, _ := id.(string)
	return s
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
