package repository

import (
	"context"
	"database/sql"

	"github.com/blog-platform-api/internal/database"
	"github.com/blog-platform-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (id, post_id, author_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.PostID, comment.AuthorID, comment.Text, comment.CreatedAt,
	)
	return err
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id string) (*models.Comment, error) {
	query := `SELECT id, post_id, author_id, text, created_at FROM comments WHERE id = $1`

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Text, &comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Update persists the editable text of a comment. Post and author
// references stay as created.
func (r *commentRepo) Update(ctx context.Context, comment *models.Comment) error {
	_, err := r.db.ExecContext(ctx, `UPDATE comments SET text = $1 WHERE id = $2`, comment.Text, comment.ID)
	return err
}

// Delete removes a comment
func (r *commentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	return err
}

// ListByPost returns a post's comments with author usernames, oldest
// first, id ascending as the tie-break
func (r *commentRepo) ListByPost(ctx context.Context, postID string) ([]*models.CommentWithAuthor, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, c.text, c.created_at, u.username AS author_username
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC
	`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.CommentWithAuthor
	for rows.Next() {
		var comment models.CommentWithAuthor
		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.AuthorID, &comment.Text,
			&comment.CreatedAt, &comment.AuthorUsername,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	return comments, rows.Err()
}
