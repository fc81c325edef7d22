package service

import (
	"context"

	"github.com/blog-platform-api/internal/clock"
	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/rs/zerolog"
)

// FeedService composes the read-side listings. Not-found listings
// (unknown category or profile, non-visible post) return (nil, nil).
type FeedService interface {
	GlobalFeed(ctx context.Context, page int) (*models.PostPage, error)
	CategoryFeed(ctx context.Context, slug string, page int) (*models.PostPage, error)
	ProfileFeed(ctx context.Context, username, viewerID string, page int) (*models.PostPage, error)
	PostDetail(ctx context.Context, postID, viewerID string) (*models.PostDetail, error)
	Categories(ctx context.Context) ([]*models.Category, error)
	Locations(ctx context.Context) ([]*models.Location, error)
}

// BlogService orchestrates mutations. Every call resolves to a single
// tagged MutationResult; no partial writes happen on any non-applied
// outcome.
type BlogService interface {
	CreatePost(ctx context.Context, actorID string, req *models.PostRequest) (*models.MutationResult, error)
	UpdatePost(ctx context.Context, actorID, postID string, req *models.PostRequest) (*models.MutationResult, error)
	DeletePost(ctx context.Context, actorID, postID string) (*models.MutationResult, error)
	CreateComment(ctx context.Context, actorID, postID string, req *models.CommentRequest) (*models.MutationResult, error)
	UpdateComment(ctx context.Context, actorID, postID, commentID string, req *models.CommentRequest) (*models.MutationResult, error)
	DeleteComment(ctx context.Context, actorID, postID, commentID string) (*models.MutationResult, error)
	UpdateProfile(ctx context.Context, actorID string, req *models.ProfileRequest) (*models.MutationResult, error)
}

// AuthService is the identity collaborator: it issues and checks access
// tokens. The rest of the core only ever consumes the resulting actor.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, []models.FieldError, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	ValidateToken(tokenString string) (*models.Claims, error)
}

// Services holds all service interfaces
type Services struct {
	Feed FeedService
	Blog BlogService
	Auth AuthService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, clk clock.Clock, log zerolog.Logger) *Services {
	return &Services{
		Feed: newFeedService(repos, clk, cfg.Blog.PageSize, log),
		Blog: newBlogService(repos, clk, log),
		Auth: newAuthService(repos.User, cfg, clk, log),
	}
}
