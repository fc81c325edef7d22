package benchmark

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/blog-platform-api/internal/clock"
	"github.com/blog-platform-api/internal/config"
	"github.com/blog-platform-api/internal/mocks"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/blog-platform-api/internal/service"
	"github.com/blog-platform-api/internal/validation"
	"github.com/rs/zerolog"
)

var benchNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// newBenchServices builds the service layer over in-memory stores seeded
// with the given number of visible posts
func newBenchServices(posts int) (*service.Services, *mocks.MockPostRepository) {
	users := mocks.NewMockUserRepository()
	postRepo := mocks.NewMockPostRepository()
	comments := mocks.NewMockCommentRepository()
	postRepo.Comments = comments

	users.Add(&models.User{ID: "user-1", Username: "alice", Email: "alice@example.com"})
	postRepo.Usernames["user-1"] = "alice"

	for i := 0; i < posts; i++ {
		postRepo.Add(&models.PostWithMeta{
			Post: models.Post{
				ID:          fmt.Sprintf("post-%06d", i),
				Title:       fmt.Sprintf("Post %d", i),
				Body:        "body",
				PubDate:     benchNow.Add(-time.Duration(i+1) * time.Minute),
				IsPublished: true,
				AuthorID:    "user-1",
				CreatedAt:   benchNow.Add(-24 * time.Hour),
			},
			AuthorUsername: "alice",
		})
	}

	repos := &repository.Repositories{
		User:     users,
		Post:     postRepo,
		Comment:  comments,
		Category: mocks.NewMockCategoryRepository(),
		Location: mocks.NewMockLocationRepository(),
	}
	cfg := &config.Config{
		Auth: config.AuthConfig{JWTSecret: "bench-secret", AccessTokenTTL: 15 * time.Minute},
		Blog: config.BlogConfig{PageSize: 10},
	}

	return service.NewServices(repos, cfg, clock.NewFixed(benchNow), zerolog.Nop()), postRepo
}

// BenchmarkGlobalFeed measures one page of the global feed over a large
// in-memory store
func BenchmarkGlobalFeed(b *testing.B) {
	services, _ := newBenchServices(1000)
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		page, err := services.Feed.GlobalFeed(ctx, 1)
		if err != nil {
			b.Fatal(err)
		}
		if len(page.Posts) != 10 {
			b.Fatalf("unexpected page size %d", len(page.Posts))
		}
	}

	b.ReportMetric(float64(10*b.N)/b.Elapsed().Seconds(), "posts/sec")
}

// BenchmarkIsVisible measures the pure visibility predicate
func BenchmarkIsVisible(b *testing.B) {
	published := true
	catID := "cat-1"
	post := &models.PostWithMeta{
		Post: models.Post{
			ID:          "post-1",
			PubDate:     benchNow.Add(-time.Hour),
			IsPublished: true,
			AuthorID:    "user-1",
			CategoryID:  &catID,
		},
		CategoryPublished: &published,
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if !service.IsVisible(post, benchNow, "") {
			b.Fatal("post should be visible")
		}
	}
}

// BenchmarkCreateComment measures the full comment mutation path:
// lookup, validation, write
func BenchmarkCreateComment(b *testing.B) {
	services, _ := newBenchServices(1)
	ctx := context.Background()
	req := &models.CommentRequest{Text: "benchmark comment"}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		result, err := services.Blog.CreateComment(ctx, "user-1", "post-000000", req)
		if err != nil {
			b.Fatal(err)
		}
		if result.Outcome != models.OutcomeApplied {
			b.Fatalf("unexpected outcome %s", result.Outcome)
		}
	}
}

// BenchmarkValidatePost measures the post validation pipeline including
// the RFC 3339 parse
func BenchmarkValidatePost(b *testing.B) {
	req := &models.PostRequest{
		Title:   "A post",
		Body:    "Some body text",
		PubDate: "2024-05-01T09:00:00Z",
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		errs, _ := validation.ValidatePost(req)
		if len(errs) != 0 {
			b.Fatalf("unexpected errors: %v", errs)
		}
	}
}

// BenchmarkTokenRoundTrip measures issuing and validating an access token
func BenchmarkTokenRoundTrip(b *testing.B) {
	services, _ := newBenchServices(0)
	ctx := context.Background()

	if _, _, err := services.Auth.Register(ctx, &models.RegisterRequest{
		Username: "benchuser",
		Email:    "bench@example.com",
		Password: "long-enough",
	}); err != nil {
		b.Fatal(err)
	}

	_, token, err := services.Auth.Login(ctx, "benchuser", "long-enough")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := services.Auth.ValidateToken(token); err != nil {
			b.Fatal(err)
		}
	}
}
