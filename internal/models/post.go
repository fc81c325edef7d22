package models

import (
	"time"
)

// Post represents a blog post. AuthorID is set at creation and never
// changes afterwards.
type Post struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Body        string    `json:"body" db:"body"`
	PubDate     time.Time `json:"pub_date" db:"pub_date"`
	IsPublished bool      `json:"is_published" db:"is_published"`
	AuthorID    string    `json:"author_id" db:"author_id"`
	CategoryID  *string   `json:"category_id,omitempty" db:"category_id"`
	LocationID  *string   `json:"location_id,omitempty" db:"location_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// PostWithMeta is a post as it appears in query results: joined author
// and taxonomy fields plus the comment_count annotation. CommentCount is
// computed at query time and never stored.
type PostWithMeta struct {
	Post
	AuthorUsername    string  `json:"author_username" db:"author_username"`
	CategorySlug      *string `json:"category_slug,omitempty" db:"category_slug"`
	CategoryTitle     *string `json:"category_title,omitempty" db:"category_title"`
	CategoryPublished *bool   `json:"-" db:"category_published"`
	LocationName      *string `json:"location_name,omitempty" db:"location_name"`
	CommentCount      int     `json:"comment_count" db:"comment_count"`
}

// PostRequest is the payload for creating or updating a post. The author
// is never part of the editable field set.
type PostRequest struct {
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	PubDate     string  `json:"pub_date"` // RFC 3339
	IsPublished bool    `json:"is_published"`
	CategoryID  *string `json:"category_id,omitempty"`
	LocationID  *string `json:"location_id,omitempty"`
}

// PostPage is one page of a feed listing
type PostPage struct {
	Posts    []*PostWithMeta `json:"posts"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	HasNext  bool            `json:"has_next"`
}

// PostDetail is the single-post view: the post, its comments oldest
// first, and a blank comment-form descriptor for the rendering layer
type PostDetail struct {
	Post        *PostWithMeta        `json:"post"`
	Comments    []*CommentWithAuthor `json:"comments"`
	CommentForm *FormDescriptor      `json:"comment_form"`
}
