package models

import (
	"time"
)

// Category groups posts under a slug. Categories are managed externally
// (admin tooling); this service only reads them.
type Category struct {
	ID          string    `json:"id" db:"id"`
	Slug        string    `json:"slug" db:"slug"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	IsPublished bool      `json:"is_published" db:"is_published"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Location is an optional descriptive tag attachable to a post. Same
// external lifecycle as Category.
type Location struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	IsPublished bool      `json:"is_published" db:"is_published"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
