package service

import (
	"time"

	"github.com/blog-platform-api/internal/models"
)

// IsVisible reports whether a post may be shown to the given viewer at
// the given instant. viewerID is empty for anonymous viewers.
//
// A post is publicly visible once its publication time is strictly in
// the past, it is published, and its category (when one is attached) is
// published too. A post with no category is visible on the other two
// conditions alone. The author always sees their own posts.
func IsVisible(post *models.PostWithMeta, asOf time.Time, viewerID string) bool {
	if viewerID != "" && viewerID == post.AuthorID {
		return true
	}
	if !post.PubDate.Before(asOf) {
		return false
	}
	if !post.IsPublished {
		return false
	}
	if post.CategoryID != nil && (post.CategoryPublished == nil || !*post.CategoryPublished) {
		return false
	}
	return true
}
