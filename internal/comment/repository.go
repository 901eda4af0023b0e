package comment

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles comment data persistence on Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new comment repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const commentColumns = `id, post_id, nickname, content, password_hash, created_at`

func scanComment(row interface{ Scan(...interface{}) error }) (*Comment, error) {
	c := &Comment{}
	err := row.Scan(
		&c.ID,
		&c.PostID,
		&c.Nickname,
		&c.Content,
		&c.PasswordHash,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new comment into the database
func (r *Repository) Create(ctx context.Context, c *Comment) error {
	query := `
		INSERT INTO comments (id, post_id, nickname, content, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		c.ID, c.PostID, c.Nickname, c.Content, c.PasswordHash,
	).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	c, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return c, nil
}

// ListByPost retrieves a page of the post's comments, newest first, plus the
// total count
func (r *Repository) ListByPost(ctx context.Context, params ListParams) ([]*Comment, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM comments WHERE post_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, params.PostID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, params.PostID, params.Limit, params.Skip)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, total, nil
}

// Update applies a partial update to a comment. Absent fields keep their stored values.
func (r *Repository) Update(ctx context.Context, id string, req *UpdateCommentRequest) (*Comment, error) {
	query := `
		UPDATE comments
		SET nickname = COALESCE($2, nickname),
		    content = COALESCE($3, content)
		WHERE id = $1
		RETURNING ` + commentColumns

	c, err := scanComment(r.db.QueryRowContext(ctx, query, id, req.Nickname, req.Content))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return c, nil
}

// Delete removes a comment
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

// PostExists reports whether the parent post exists
func (r *Repository) PostExists(ctx context.Context, postID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`
	if err := r.db.QueryRowContext(ctx, query, postID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check post: %w", err)
	}
	return exists, nil
}

// AddToPostCommentCount adjusts the post's denormalized comment counter in-place
func (r *Repository) AddToPostCommentCount(ctx context.Context, postID string, delta int) error {
	query := `UPDATE posts SET comment_count = GREATEST(comment_count + $2, 0) WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, postID, delta); err != nil {
		return fmt.Errorf("failed to adjust post comment count: %w", err)
	}
	return nil
}
