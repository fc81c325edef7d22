package mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/blog-platform-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users          map[string]*models.User
	UsernameToUser map[string]*models.User
	InsertError    error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:          make(map[string]*models.User),
		UsernameToUser: make(map[string]*models.User),
	}
}

// Add seeds a user and keeps the username index in sync
func (m *MockUserRepository) Add(user *models.User) {
	m.Users[user.ID] = user
	m.UsernameToUser[user.Username] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User, password string) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	m.Add(user)
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.UsernameToUser[username], nil
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	_, exists := m.UsernameToUser[username]
	return exists, nil
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range m.Users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	existing, ok := m.Users[user.ID]
	if !ok {
		return fmt.Errorf("no such user")
	}
	delete(m.UsernameToUser, existing.Username)
	*existing = *user
	m.UsernameToUser[existing.Username] = existing
	return nil
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	user := m.UsernameToUser[username]
	if user == nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}
	return user, nil
}

// MockPostRepository is a mock implementation of PostRepository. When
// Comments is set, comment_count is computed live against it, matching
// the aggregate the real store produces.
type MockPostRepository struct {
	Posts       map[string]*models.PostWithMeta
	Comments    *MockCommentRepository
	Usernames   map[string]string // author id -> username, for Create
	InsertError error
	DeleteError error
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		Posts:     make(map[string]*models.PostWithMeta),
		Usernames: make(map[string]string),
	}
}

// Add seeds a fully annotated post
func (m *MockPostRepository) Add(post *models.PostWithMeta) {
	m.Posts[post.ID] = post
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Posts[post.ID] = &models.PostWithMeta{
		Post:           *post,
		AuthorUsername: m.Usernames[post.AuthorID],
	}
	return nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.PostWithMeta, error) {
	post, ok := m.Posts[id]
	if !ok {
		return nil, nil
	}
	return m.annotated(post), nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	existing, ok := m.Posts[post.ID]
	if !ok {
		return fmt.Errorf("no such post")
	}
	existing.Post = *post
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	delete(m.Posts, id)
	// Mirror the store's ON DELETE CASCADE
	if m.Comments != nil {
		for cid, c := range m.Comments.Comments {
			if c.PostID == id {
				delete(m.Comments.Comments, cid)
			}
		}
	}
	return nil
}

func (m *MockPostRepository) ListPublic(ctx context.Context, asOf time.Time, limit, offset int) ([]*models.PostWithMeta, error) {
	return m.list(func(p *models.PostWithMeta) bool {
		return publiclyVisible(p, asOf)
	}, limit, offset), nil
}

func (m *MockPostRepository) ListByCategory(ctx context.Context, categoryID string, asOf time.Time, limit, offset int) ([]*models.PostWithMeta, error) {
	return m.list(func(p *models.PostWithMeta) bool {
		return publiclyVisible(p, asOf) && p.CategoryID != nil && *p.CategoryID == categoryID
	}, limit, offset), nil
}

func (m *MockPostRepository) ListByAuthor(ctx context.Context, authorID string, asOf time.Time, includeHidden bool, limit, offset int) ([]*models.PostWithMeta, error) {
	return m.list(func(p *models.PostWithMeta) bool {
		if p.AuthorID != authorID {
			return false
		}
		return includeHidden || publiclyVisible(p, asOf)
	}, limit, offset), nil
}

func (m *MockPostRepository) list(match func(*models.PostWithMeta) bool, limit, offset int) []*models.PostWithMeta {
	var posts []*models.PostWithMeta
	for _, p := range m.Posts {
		if match(p) {
			posts = append(posts, m.annotated(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].PubDate.Equal(posts[j].PubDate) {
			return posts[i].PubDate.After(posts[j].PubDate)
		}
		return posts[i].ID > posts[j].ID
	})
	if offset >= len(posts) {
		return nil
	}
	posts = posts[offset:]
	if limit < len(posts) {
		posts = posts[:limit]
	}
	return posts
}

// annotated returns a copy with the live comment count filled in
func (m *MockPostRepository) annotated(p *models.PostWithMeta) *models.PostWithMeta {
	out := *p
	if m.Comments != nil {
		count := 0
		for _, c := range m.Comments.Comments {
			if c.PostID == p.ID {
				count++
			}
		}
		out.CommentCount = count
	}
	return &out
}

// publiclyVisible mirrors the store-side filter: strictly-past pub_date,
// published, category (if any) published
func publiclyVisible(p *models.PostWithMeta, asOf time.Time) bool {
	if !p.PubDate.Before(asOf) {
		return false
	}
	if !p.IsPublished {
		return false
	}
	if p.CategoryID != nil && (p.CategoryPublished == nil || !*p.CategoryPublished) {
		return false
	}
	return true
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments    map[string]*models.Comment
	Usernames   map[string]string // author id -> username
	InsertError error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments:  make(map[string]*models.Comment),
		Usernames: make(map[string]string),
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.InsertError != nil {
		return m.InsertError
	}
	m.Comments[comment.ID] = comment
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	return m.Comments[id], nil
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	existing, ok := m.Comments[comment.ID]
	if !ok {
		return fmt.Errorf("no such comment")
	}
	*existing = *comment
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	delete(m.Comments, id)
	return nil
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID string) ([]*models.CommentWithAuthor, error) {
	var comments []*models.CommentWithAuthor
	for _, c := range m.Comments {
		if c.PostID == postID {
			comments = append(comments, &models.CommentWithAuthor{
				Comment:        *c,
				AuthorUsername: m.Usernames[c.AuthorID],
			})
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	Categories map[string]*models.Category
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{Categories: make(map[string]*models.Category)}
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return m.Categories[id], nil
}

func (m *MockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	for _, c := range m.Categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, nil
}

func (m *MockCategoryRepository) ListPublished(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	for _, c := range m.Categories {
		if c.IsPublished {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Title < categories[j].Title })
	return categories, nil
}

// MockLocationRepository is a mock implementation of LocationRepository
type MockLocationRepository struct {
	Locations map[string]*models.Location
}

func NewMockLocationRepository() *MockLocationRepository {
	return &MockLocationRepository{Locations: make(map[string]*models.Location)}
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id string) (*models.Location, error) {
	return m.Locations[id], nil
}

func (m *MockLocationRepository) ListPublished(ctx context.Context) ([]*models.Location, error) {
	var locations []*models.Location
	for _, l := range m.Locations {
		if l.IsPublished {
			locations = append(locations, l)
		}
	}
	sort.Slice(locations, func(i, j int) bool { return locations[i].Name < locations[j].Name })
	return locations, nil
}
