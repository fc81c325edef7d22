package service

import (
	"context"
	"fmt"

	"github.com/blog-platform-api/internal/clock"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/rs/zerolog"
)

// feedService is the concrete implementation of FeedService. All filter
// parameters are explicit per call; there is no shared query state
// between requests, and the current time always comes from the injected
// clock.
type feedService struct {
	posts      repository.PostRepository
	comments   repository.CommentRepository
	categories repository.CategoryRepository
	locations  repository.LocationRepository
	users      repository.UserRepository
	clk        clock.Clock
	pageSize   int
	log        zerolog.Logger
}

func newFeedService(repos *repository.Repositories, clk clock.Clock, pageSize int, log zerolog.Logger) *feedService {
	return &feedService{
		posts:      repos.Post,
		comments:   repos.Comment,
		categories: repos.Category,
		locations:  repos.Location,
		users:      repos.User,
		clk:        clk,
		pageSize:   pageSize,
		log:        log.With().Str("component", "feed").Logger(),
	}
}

// GlobalFeed returns one page of publicly visible posts, newest first
func (s *feedService) GlobalFeed(ctx context.Context, page int) (*models.PostPage, error) {
	page = normalizePage(page)

	posts, err := s.posts.ListPublic(ctx, s.clk.Now(), s.pageSize+1, (page-1)*s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return s.toPage(posts, page), nil
}

// CategoryFeed returns one page of publicly visible posts in a category.
// An unknown or unpublished category makes the whole listing not found.
func (s *feedService) CategoryFeed(ctx context.Context, slug string, page int) (*models.PostPage, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil || !category.IsPublished {
		return nil, nil
	}

	page = normalizePage(page)
	posts, err := s.posts.ListByCategory(ctx, category.ID, s.clk.Now(), s.pageSize+1, (page-1)*s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list category posts: %w", err)
	}

	return s.toPage(posts, page), nil
}

// ProfileFeed returns one page of a user's posts. The profile owner sees
// every post including drafts and future-dated ones; everyone else gets
// only the publicly visible subset.
func (s *feedService) ProfileFeed(ctx context.Context, username, viewerID string, page int) (*models.PostPage, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	selfView := viewerID != "" && viewerID == user.ID

	page = normalizePage(page)
	posts, err := s.posts.ListByAuthor(ctx, user.ID, s.clk.Now(), selfView, s.pageSize+1, (page-1)*s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list author posts: %w", err)
	}

	return s.toPage(posts, page), nil
}

// PostDetail returns a single post with its comments, oldest first, and
// a blank comment form descriptor. A post the viewer may not see
// resolves to not found rather than an empty page.
func (s *feedService) PostDetail(ctx context.Context, postID, viewerID string) (*models.PostDetail, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return nil, nil
	}

	if !IsVisible(post, s.clk.Now(), viewerID) {
		return nil, nil
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if comments == nil {
		comments = []*models.CommentWithAuthor{}
	}

	return &models.PostDetail{
		Post:        post,
		Comments:    comments,
		CommentForm: models.NewCommentForm(postID),
	}, nil
}

// Categories returns the published categories, for post-form taxonomy
// choices
func (s *feedService) Categories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categories.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []*models.Category{}
	}
	return categories, nil
}

// Locations returns the published locations, for post-form taxonomy
// choices
func (s *feedService) Locations(ctx context.Context) ([]*models.Location, error) {
	locations, err := s.locations.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	if locations == nil {
		locations = []*models.Location{}
	}
	return locations, nil
}

// toPage trims the one extra row fetched beyond the page size into a
// has-next flag
func (s *feedService) toPage(posts []*models.PostWithMeta, page int) *models.PostPage {
	hasNext := len(posts) > s.pageSize
	if hasNext {
		posts = posts[:s.pageSize]
	}
	if posts == nil {
		posts = []*models.PostWithMeta{}
	}
	return &models.PostPage{
		Posts:    posts,
		Page:     page,
		PageSize: s.pageSize,
		HasNext:  hasNext,
	}
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
