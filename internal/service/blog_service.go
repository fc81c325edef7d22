package service

import (
	"context"
	"fmt"

	"github.com/blog-platform-api/internal/clock"
	"github.com/blog-platform-api/internal/models"
	"github.com/blog-platform-api/internal/repository"
	"github.com/blog-platform-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// blogService is the concrete implementation of BlogService. Each
// mutation is request-scoped: authorize, validate, then exactly one
// repository write, so a non-applied outcome never leaves partial state
// behind.
type blogService struct {
	posts      repository.PostRepository
	comments   repository.CommentRepository
	categories repository.CategoryRepository
	locations  repository.LocationRepository
	users      repository.UserRepository
	clk        clock.Clock
	log        zerolog.Logger
}

func newBlogService(repos *repository.Repositories, clk clock.Clock, log zerolog.Logger) *blogService {
	return &blogService{
		posts:      repos.Post,
		comments:   repos.Comment,
		categories: repos.Category,
		locations:  repos.Location,
		users:      repos.User,
		clk:        clk,
		log:        log.With().Str("component", "blog").Logger(),
	}
}

// CreatePost persists a new post with the actor bound as author and
// directs to the actor's own profile feed
func (s *blogService) CreatePost(ctx context.Context, actorID string, req *models.PostRequest) (*models.MutationResult, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}
	if actor == nil {
		return notFound(), nil
	}

	errs, pubDate := validation.ValidatePost(req)
	errs = append(errs, s.resolveTaxonomy(ctx, req)...)
	if len(errs) > 0 {
		return invalid(errs), nil
	}

	post := &models.Post{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Body:        req.Body,
		PubDate:     pubDate,
		IsPublished: req.IsPublished,
		AuthorID:    actor.ID,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		CreatedAt:   s.clk.Now(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.log.Info().Str("post_id", post.ID).Str("author", actor.Username).Msg("Post created")
	return applied(ProfilePath(actor.Username), post.ID), nil
}

// UpdatePost persists changed fields of an existing post. The author
// field is outside the editable set and keeps its original value.
func (s *blogService) UpdatePost(ctx context.Context, actorID, postID string, req *models.PostRequest) (*models.MutationResult, error) {
	existing, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if existing == nil {
		return notFound(), nil
	}

	if d := AuthorizeMutation(actorID, existing.AuthorID, existing.ID); !d.Allowed {
		return denied(d.RedirectTo), nil
	}

	errs, pubDate := validation.ValidatePost(req)
	errs = append(errs, s.resolveTaxonomy(ctx, req)...)
	if len(errs) > 0 {
		return invalid(errs), nil
	}

	post := &models.Post{
		ID:          existing.ID,
		Title:       req.Title,
		Body:        req.Body,
		PubDate:     pubDate,
		IsPublished: req.IsPublished,
		AuthorID:    existing.AuthorID,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return applied(PostDetailPath(post.ID), post.ID), nil
}

// DeletePost removes a post and, via the store's cascade, its comments;
// success directs to the global feed
func (s *blogService) DeletePost(ctx context.Context, actorID, postID string) (*models.MutationResult, error) {
	existing, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if existing == nil {
		return notFound(), nil
	}

	if d := AuthorizeMutation(actorID, existing.AuthorID, existing.ID); !d.Allowed {
		return denied(d.RedirectTo), nil
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	s.log.Info().Str("post_id", postID).Msg("Post deleted")
	return applied(GlobalFeedPath(), postID), nil
}

// CreateComment persists a new comment on an existing post with the
// actor bound as author
func (s *blogService) CreateComment(ctx context.Context, actorID, postID string, req *models.CommentRequest) (*models.MutationResult, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if post == nil {
		return notFound(), nil
	}

	if errs := validation.ValidateComment(req); len(errs) > 0 {
		return invalid(errs), nil
	}

	comment := &models.Comment{
		ID:        uuid.New().String(),
		PostID:    post.ID,
		AuthorID:  actorID,
		Text:      req.Text,
		CreatedAt: s.clk.Now(),
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return applied(PostDetailPath(post.ID), comment.ID), nil
}

// UpdateComment persists the changed text of an existing comment
func (s *blogService) UpdateComment(ctx context.Context, actorID, postID, commentID string, req *models.CommentRequest) (*models.MutationResult, error) {
	comment, err := s.getCommentOnPost(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return notFound(), nil
	}

	if d := AuthorizeMutation(actorID, comment.AuthorID, comment.PostID); !d.Allowed {
		return denied(d.RedirectTo), nil
	}

	if errs := validation.ValidateComment(req); len(errs) > 0 {
		return invalid(errs), nil
	}

	comment.Text = req.Text
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return applied(PostDetailPath(comment.PostID), comment.ID), nil
}

// DeleteComment removes a comment; both denial and success direct to the
// parent post's detail view
func (s *blogService) DeleteComment(ctx context.Context, actorID, postID, commentID string) (*models.MutationResult, error) {
	comment, err := s.getCommentOnPost(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return notFound(), nil
	}

	if d := AuthorizeMutation(actorID, comment.AuthorID, comment.PostID); !d.Allowed {
		return denied(d.RedirectTo), nil
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return nil, fmt.Errorf("failed to delete comment: %w", err)
	}

	return applied(PostDetailPath(comment.PostID), comment.ID), nil
}

// UpdateProfile persists the actor's own profile fields and directs to
// their profile feed
func (s *blogService) UpdateProfile(ctx context.Context, actorID string, req *models.ProfileRequest) (*models.MutationResult, error) {
	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return notFound(), nil
	}

	errs := validation.ValidateProfile(req)
	if len(errs) == 0 {
		if req.Username != user.Username {
			taken, err := s.users.UsernameExists(ctx, req.Username)
			if err != nil {
				return nil, fmt.Errorf("failed to check username: %w", err)
			}
			if taken {
				errs = append(errs, models.FieldError{Field: "username", Message: "username already taken", Value: req.Username})
			}
		}
		if req.Email != user.Email {
			taken, err := s.users.EmailExists(ctx, req.Email)
			if err != nil {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			if taken {
				errs = append(errs, models.FieldError{Field: "email", Message: "email already registered", Value: req.Email})
			}
		}
	}
	if len(errs) > 0 {
		return invalid(errs), nil
	}

	user.Username = req.Username
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return applied(ProfilePath(user.Username), user.ID), nil
}

// getCommentOnPost looks up a comment and checks it belongs to the post
// named in the route; a comment reached through the wrong post is not
// found
func (s *blogService) getCommentOnPost(ctx context.Context, postID, commentID string) (*models.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if comment == nil || comment.PostID != postID {
		return nil, nil
	}
	return comment, nil
}

// resolveTaxonomy checks optional category/location references against
// the store; references must point at existing published rows
func (s *blogService) resolveTaxonomy(ctx context.Context, req *models.PostRequest) []models.FieldError {
	var errs []models.FieldError

	if req.CategoryID != nil {
		category, err := s.categories.GetByID(ctx, *req.CategoryID)
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to resolve category")
			errs = append(errs, models.FieldError{Field: "category_id", Message: "could not resolve category", Value: *req.CategoryID})
		} else if category == nil || !category.IsPublished {
			errs = append(errs, models.FieldError{Field: "category_id", Message: "unknown category", Value: *req.CategoryID})
		}
	}

	if req.LocationID != nil {
		location, err := s.locations.GetByID(ctx, *req.LocationID)
		if err != nil {
			s.log.Error().Err(err).Msg("Failed to resolve location")
			errs = append(errs, models.FieldError{Field: "location_id", Message: "could not resolve location", Value: *req.LocationID})
		} else if location == nil || !location.IsPublished {
			errs = append(errs, models.FieldError{Field: "location_id", Message: "unknown location", Value: *req.LocationID})
		}
	}

	return errs
}
