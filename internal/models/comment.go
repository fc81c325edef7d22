package models

import (
	"time"
)

// Comment represents a comment on a post. PostID and AuthorID are set at
// creation and never change afterwards.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	PostID    string    `json:"post_id" db:"post_id"`
	AuthorID  string    `json:"author_id" db:"author_id"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CommentWithAuthor is a comment joined with its author's username for
// listing under a post detail view
type CommentWithAuthor struct {
	Comment
	AuthorUsername string `json:"author_username" db:"author_username"`
}

// CommentRequest is the payload for creating or updating a comment
type CommentRequest struct {
	Text string `json:"text"`
}

// MaxCommentLength is the maximum allowed length of a comment text
const MaxCommentLength = 5000
