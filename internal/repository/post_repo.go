package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
)

// postRepo is the concrete implementation of PostRepository
type postRepo struct {
	db *database.DB
}

// NewPostRepo creates a new post repository
func NewPostRepo(db *database.DB) PostRepository {
	return &postRepo{db: db}
}

// postSelect joins author, taxonomy and the live comment count onto each
// post row. Comment_count is an aggregate, never a stored column.
const postSelect = `
	SELECT p.id, p.title, p.body, p.pub_date, p.is_published,
	       p.author_id, p.category_id, p.location_id, p.created_at,
	       u.username AS author_username,
	       c.slug AS category_slug, c.title AS category_title, c.is_published AS category_published,
	       l.name AS location_name,
	       COUNT(cm.id) AS comment_count
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN locations l ON l.id = p.location_id
	LEFT JOIN comments cm ON cm.post_id = p.id
`

const postGroupBy = ` GROUP BY p.id, u.username, c.slug, c.title, c.is_published, l.name`

// Ordering is pub_date descending with id descending as a stable
// tie-break so pagination never reorders between identical requests.
const postOrder = ` ORDER BY p.pub_date DESC, p.id DESC`

// publicFilter is the store-side half of the visibility rule: already
// published, publication time strictly in the past, and the category
// (when one is attached) published too.
const publicFilter = `p.pub_date < $1 AND p.is_published = TRUE AND (p.category_id IS NULL OR c.is_published = TRUE)`

// Create inserts a new post
func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, title, body, pub_date, is_published, author_id, category_id, location_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Body, post.PubDate, post.IsPublished,
		post.AuthorID, post.CategoryID, post.LocationID, post.CreatedAt,
	)
	return err
}

// GetByID retrieves a post by ID with its annotations
func (r *postRepo) GetByID(ctx context.Context, id string) (*models.PostWithMeta, error) {
	query := postSelect + ` WHERE p.id = $1` + postGroupBy

	post, err := scanPostWithMeta(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Update persists the editable fields of a post. The author column is
// deliberately absent from the statement.
func (r *postRepo) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET title = $1, body = $2, pub_date = $3, is_published = $4, category_id = $5, location_id = $6
		WHERE id = $7
	`
	_, err := r.db.ExecContext(ctx, query,
		post.Title, post.Body, post.PubDate, post.IsPublished,
		post.CategoryID, post.LocationID, post.ID,
	)
	return err
}

// Delete removes a post. Dependent comments go with it via the ON DELETE
// CASCADE constraint on comments.post_id.
func (r *postRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

// ListPublic returns the global feed page: publicly visible posts as of
// the given time
func (r *postRepo) ListPublic(ctx context.Context, asOf time.Time, limit, offset int) ([]*models.PostWithMeta, error) {
	query := postSelect + ` WHERE ` + publicFilter + postGroupBy + postOrder + ` LIMIT $2 OFFSET $3`
	return r.queryPosts(ctx, query, asOf, limit, offset)
}

// ListByCategory returns publicly visible posts in one category
func (r *postRepo) ListByCategory(ctx context.Context, categoryID string, asOf time.Time, limit, offset int) ([]*models.PostWithMeta, error) {
	query := postSelect + ` WHERE ` + publicFilter + ` AND p.category_id = $4` + postGroupBy + postOrder + ` LIMIT $2 OFFSET $3`
	return r.queryPosts(ctx, query, asOf, limit, offset, categoryID)
}

// ListByAuthor returns one author's posts. With includeHidden the public
// filter is dropped entirely (the author viewing their own profile sees
// drafts and future posts); otherwise only publicly visible posts leak
// out.
func (r *postRepo) ListByAuthor(ctx context.Context, authorID string, asOf time.Time, includeHidden bool, limit, offset int) ([]*models.PostWithMeta, error) {
	if includeHidden {
		query := postSelect + ` WHERE p.author_id = $1` + postGroupBy + postOrder + ` LIMIT $2 OFFSET $3`
		return r.queryPosts(ctx, query, authorID, limit, offset)
	}
	query := postSelect + ` WHERE ` + publicFilter + ` AND p.author_id = $4` + postGroupBy + postOrder + ` LIMIT $2 OFFSET $3`
	return r.queryPosts(ctx, query, asOf, limit, offset, authorID)
}

func (r *postRepo) queryPosts(ctx context.Context, query string, first interface{}, limit, offset int, extra ...interface{}) ([]*models.PostWithMeta, error) {
	args := append([]interface{}{first, limit, offset}, extra...)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.PostWithMeta
	for rows.Next() {
		post, err := scanPostWithMeta(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPostWithMeta(row rowScanner) (*models.PostWithMeta, error) {
	var post models.PostWithMeta
	var categoryID, locationID sql.NullString
	var categorySlug, categoryTitle, locationName sql.NullString
	var categoryPublished sql.NullBool

	err := row.Scan(
		&post.ID, &post.Title, &post.Body, &post.PubDate, &post.IsPublished,
		&post.AuthorID, &categoryID, &locationID, &post.CreatedAt,
		&post.AuthorUsername,
		&categorySlug, &categoryTitle, &categoryPublished,
		&locationName,
		&post.CommentCount,
	)
	if err != nil {
		return nil, err
	}

	if categoryID.Valid {
		post.CategoryID = &categoryID.String
	}
	if locationID.Valid {
		post.LocationID = &locationID.String
	}
	if categorySlug.Valid {
		post.CategorySlug = &categorySlug.String
	}
	if categoryTitle.Valid {
		post.CategoryTitle = &categoryTitle.String
	}
	if categoryPublished.Valid {
		post.CategoryPublished = &categoryPublished.Bool
	}
	if locationName.Valid {
		post.LocationName = &locationName.String
	}

	return &post, nil
}
