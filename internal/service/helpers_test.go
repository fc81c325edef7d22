package service_test

import (
	"time"

	"github.com/blog-platform-api/internal/clock"
	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/mocks"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/blog-platform-api/internal/service"
	"github.com/rs/zerolog"
)

// testNow is the frozen instant every test clock reports
var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// testEnv wires the services against in-memory repositories with a
// fixed clock, so every visibility decision is deterministic
type testEnv struct {
	users      *mocks.MockUserRepository
	posts      *mocks.MockPostRepository
	comments   *mocks.MockCommentRepository
	categories *mocks.MockCategoryRepository
	locations  *mocks.MockLocationRepository
	services   *service.Services
}

func newTestEnv() *testEnv {
	users := mocks.NewMockUserRepository()
	posts := mocks.NewMockPostRepository()
	comments := mocks.NewMockCommentRepository()
	categories := mocks.NewMockCategoryRepository()
	locations := mocks.NewMockLocationRepository()
	posts.Comments = comments

	repos := &repository.Repositories{
		User:     users,
		Post:     posts,
		Comment:  comments,
		Category: categories,
		Location: locations,
	}

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			AccessTokenTTL: 15 * time.Minute,
		},
		Blog: config.BlogConfig{PageSize: 10},
	}

	return &testEnv{
		users:      users,
		posts:      posts,
		comments:   comments,
		categories: categories,
		locations:  locations,
		services:   service.NewServices(repos, cfg, clock.NewFixed(testNow), zerolog.Nop()),
	}
}

// addUser seeds a user and registers the username with the post and
// comment stores for join annotation
func (e *testEnv) addUser(id, username string) *models.User {
	user := &models.User{
		ID:        id,
		Username:  username,
		Email:     username + "@example.com",
		CreatedAt: testNow.Add(-24 * time.Hour),
	}
	e.users.Add(user)
	e.posts.Usernames[id] = username
	e.comments.Usernames[id] = username
	return user
}

// addPost seeds a post published at the given offset from testNow
func (e *testEnv) addPost(id, authorID string, pubOffset time.Duration, published bool) *models.PostWithMeta {
	post := &models.PostWithMeta{
		Post: models.Post{
			ID:          id,
			Title:       "Title " + id,
			Body:        "Body " + id,
			PubDate:     testNow.Add(pubOffset),
			IsPublished: published,
			AuthorID:    authorID,
			CreatedAt:   testNow.Add(-48 * time.Hour),
		},
		AuthorUsername: e.posts.Usernames[authorID],
	}
	e.posts.Add(post)
	return post
}

// addCategory seeds a category and returns it
func (e *testEnv) addCategory(id, slug string, published bool) *models.Category {
	category := &models.Category{
		ID:          id,
		Slug:        slug,
		Title:       "Category " + slug,
		IsPublished: published,
		CreatedAt:   testNow.Add(-72 * time.Hour),
	}
	e.categories.Categories[id] = category
	return category
}

// attachCategory links a seeded post to a seeded category the way the
// store's join would
func attachCategory(post *models.PostWithMeta, category *models.Category) {
	post.CategoryID = &category.ID
	post.CategorySlug = &category.Slug
	post.CategoryTitle = &category.Title
	post.CategoryPublished = &category.IsPublished
}

// addComment seeds a comment at the given offset from testNow
func (e *testEnv) addComment(id, postID, authorID string, offset time.Duration) *models.Comment {
	comment := &models.Comment{
		ID:        id,
		PostID:    postID,
		AuthorID:  authorID,
		Text:      "Comment " + id,
		CreatedAt: testNow.Add(offset),
	}
	e.comments.Comments[id] = comment
	return comment
}

func validPostRequest() *models.PostRequest {
	return &models.PostRequest{
		Title:       "A fresh post",
		Body:        "Some body text",
		PubDate:     testNow.Add(-time.Hour).Format(time.RFC3339),
		IsPublished: true,
	}
}
