package repository

import (
	"context"
	"database/sql"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
)

// Categories and locations are created and retired by admin tooling
// outside this service, so both repositories are read-only.

type categoryRepo struct {
	db *database.DB
}

// NewCategoryRepo creates a new category repository
func NewCategoryRepo(db *database.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

// GetByID retrieves a category by ID
func (r *categoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

// GetBySlug retrieves a category by slug
func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.getOne(ctx, `WHERE slug = $1`, slug)
}

func (r *categoryRepo) getOne(ctx context.Context, where string, arg interface{}) (*models.Category, error) {
	query := `SELECT id, slug, title, description, is_published, created_at FROM categories ` + where

	var category models.Category
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&category.ID, &category.Slug, &category.Title, &category.Description,
		&category.IsPublished, &category.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// ListPublished returns all published categories, for form rendering
func (r *categoryRepo) ListPublished(ctx context.Context) ([]*models.Category, error) {
	query := `SELECT id, slug, title, description, is_published, created_at FROM categories WHERE is_published = TRUE ORDER BY title`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var category models.Category
		err := rows.Scan(
			&category.ID, &category.Slug, &category.Title, &category.Description,
			&category.IsPublished, &category.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	return categories, rows.Err()
}

type locationRepo struct {
	db *database.DB
}

// NewLocationRepo creates a new location repository
func NewLocationRepo(db *database.DB) LocationRepository {
	return &locationRepo{db: db}
}

// GetByID retrieves a location by ID
func (r *locationRepo) GetByID(ctx context.Context, id string) (*models.Location, error) {
	query := `SELECT id, name, is_published, created_at FROM locations WHERE id = $1`

	var location models.Location
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&location.ID, &location.Name, &location.IsPublished, &location.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &location, nil
}

// ListPublished returns all published locations, for form rendering
func (r *locationRepo) ListPublished(ctx context.Context) ([]*models.Location, error) {
	query := `SELECT id, name, is_published, created_at FROM locations WHERE is_published = TRUE ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*models.Location
	for rows.Next() {
		var location models.Location
		err := rows.Scan(&location.ID, &location.Name, &location.IsPublished, &location.CreatedAt)
		if err != nil {
			return nil, err
		}
		locations = append(locations, &location)
	}

	return locations, rows.Err()
}
