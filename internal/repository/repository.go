package repository

import (
	"context"
	"time"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
)

// Point lookups return (nil, nil) when no row matches; callers translate
// that into their own not-found outcome.

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User, password string) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, user *models.User) error
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

// PostRepository defines the interface for post data operations. Listing
// queries take the as-of time explicitly so no query reads the wall
// clock on its own, and return posts annotated with comment_count,
// ordered by pub_date descending with id descending as the tie-break.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.PostWithMeta, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
	ListPublic(ctx context.Context, asOf time.Time, limit, offset int) ([]*models.PostWithMeta, error)
	ListByCategory(ctx context.Context, categoryID string, asOf time.Time, limit, offset int) ([]*models.PostWithMeta, error)
	ListByAuthor(ctx context.Context, authorID string, asOf time.Time, includeHidden bool, limit, offset int) ([]*models.PostWithMeta, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id string) error
	ListByPost(ctx context.Context, postID string) ([]*models.CommentWithAuthor, error)
}

// CategoryRepository defines read access to externally-managed categories
type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	ListPublished(ctx context.Context) ([]*models.Category, error)
}

// LocationRepository defines read access to externally-managed locations
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*models.Location, error)
	ListPublished(ctx context.Context) ([]*models.Location, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User     UserRepository
	Post     PostRepository
	Comment  CommentRepository
	Category CategoryRepository
	Location LocationRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepo(db),
		Post:     NewPostRepo(db),
		Comment:  NewCommentRepo(db),
		Category: NewCategoryRepo(db),
		Location: NewLocationRepo(db),
	}
}
