package mocks

import (
	"context"
	"fmt"

	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/service"
)

// MockFeedService is a mock implementation of FeedService
type MockFeedService struct {
	GlobalFeedFunc   func(ctx context.Context, page int) (*models.PostPage, error)
	CategoryFeedFunc func(ctx context.Context, slug string, page int) (*models.PostPage, error)
	ProfileFeedFunc  func(ctx context.Context, username, viewerID string, page int) (*models.PostPage, error)
	PostDetailFunc   func(ctx context.Context, postID, viewerID string) (*models.PostDetail, error)
	CategoryList     []*models.Category
	LocationList     []*models.Location
}

// Verify interface compliance
var _ service.FeedService = (*MockFeedService)(nil)

func NewMockFeedService() *MockFeedService {
	return &MockFeedService{}
}

func (m *MockFeedService) GlobalFeed(ctx context.Context, page int) (*models.PostPage, error) {
	if m.GlobalFeedFunc != nil {
		return m.GlobalFeedFunc(ctx, page)
	}
	return emptyPage(page), nil
}

func (m *MockFeedService) CategoryFeed(ctx context.Context, slug string, page int) (*models.PostPage, error) {
	if m.CategoryFeedFunc != nil {
		return m.CategoryFeedFunc(ctx, slug, page)
	}
	return emptyPage(page), nil
}

func (m *MockFeedService) ProfileFeed(ctx context.Context, username, viewerID string, page int) (*models.PostPage, error) {
	if m.ProfileFeedFunc != nil {
		return m.ProfileFeedFunc(ctx, username, viewerID, page)
	}
	return emptyPage(page), nil
}

func (m *MockFeedService) PostDetail(ctx context.Context, postID, viewerID string) (*models.PostDetail, error) {
	if m.PostDetailFunc != nil {
		return m.PostDetailFunc(ctx, postID, viewerID)
	}
	return nil, nil
}

func (m *MockFeedService) Categories(ctx context.Context) ([]*models.Category, error) {
	if m.CategoryList == nil {
		return []*models.Category{}, nil
	}
	return m.CategoryList, nil
}

func (m *MockFeedService) Locations(ctx context.Context) ([]*models.Location, error) {
	if m.LocationList == nil {
		return []*models.Location{}, nil
	}
	return m.LocationList, nil
}

func emptyPage(page int) *models.PostPage {
	return &models.PostPage{
		Posts:    []*models.PostWithMeta{},
		Page:     page,
		PageSize: 10,
	}
}

// MockBlogService is a mock implementation of BlogService. Every call
// records itself and returns Result, so handler tests can pin one
// outcome and assert the dispatch.
type MockBlogService struct {
	Result *models.MutationResult
	Err    error
	Calls  []string
}

// Verify interface compliance
var _ service.BlogService = (*MockBlogService)(nil)

func NewMockBlogService() *MockBlogService {
	return &MockBlogService{
		Result: &models.MutationResult{Outcome: models.OutcomeApplied, RedirectTo: "/v1/posts"},
	}
}

func (m *MockBlogService) record(call string) (*models.MutationResult, error) {
	m.Calls = append(m.Calls, call)
	return m.Result, m.Err
}

func (m *MockBlogService) CreatePost(ctx context.Context, actorID string, req *models.PostRequest) (*models.MutationResult, error) {
	return m.record("CreatePost")
}

func (m *MockBlogService) UpdatePost(ctx context.Context, actorID, postID string, req *models.PostRequest) (*models.MutationResult, error) {
	return m.record("UpdatePost")
}

func (m *MockBlogService) DeletePost(ctx context.Context, actorID, postID string) (*models.MutationResult, error) {
	return m.record("DeletePost")
}

func (m *MockBlogService) CreateComment(ctx context.Context, actorID, postID string, req *models.CommentRequest) (*models.MutationResult, error) {
	return m.record("CreateComment")
}

func (m *MockBlogService) UpdateComment(ctx context.Context, actorID, postID, commentID string, req *models.CommentRequest) (*models.MutationResult, error) {
	return m.record("UpdateComment")
}

func (m *MockBlogService) DeleteComment(ctx context.Context, actorID, postID, commentID string) (*models.MutationResult, error) {
	return m.record("DeleteComment")
}

func (m *MockBlogService) UpdateProfile(ctx context.Context, actorID string, req *models.ProfileRequest) (*models.MutationResult, error) {
	return m.record("UpdateProfile")
}

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.RegisterRequest) (*models.User, []models.FieldError, error)
	LoginFunc    func(ctx context.Context, username, password string) (*models.User, string, error)
	Tokens       map[string]*models.Claims
}

// Verify interface compliance
var _ service.AuthService = (*MockAuthService)(nil)

func NewMockAuthService() *MockAuthService {
	return &MockAuthService{Tokens: make(map[string]*models.Claims)}
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, []models.FieldError, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return &models.User{ID: "test-user-id", Username: req.Username, Email: req.Email}, nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, username, password)
	}
	return &models.User{ID: "test-user-id", Username: username}, "test-token", nil
}

func (m *MockAuthService) ValidateToken(tokenString string) (*models.Claims, error) {
	claims, ok := m.Tokens[tokenString]
	if !ok {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
