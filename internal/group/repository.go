package group

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Repository handles group data persistence on Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const groupColumns = `id, name, image_url, introduction, is_public, password_hash, like_count, post_count, badges, created_at`

func scanGroup(row interface{ Scan(...interface{}) error }) (*Group, error) {
	g := &Group{}
	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.ImageURL,
		&g.Introduction,
		&g.IsPublic,
		&g.PasswordHash,
		&g.LikeCount,
		&g.PostCount,
		pq.Array(&g.Badges),
		&g.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Create inserts a new group into the database
func (r *Repository) Create(ctx context.Context, g *Group) error {
	query := `
		INSERT INTO groups (id, name, image_url, introduction, is_public, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING like_count, post_count, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		g.ID, g.Name, g.ImageURL, g.Introduction, g.IsPublic, g.PasswordHash,
	).Scan(&g.LikeCount, &g.PostCount, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	return nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`

	g, err := scanGroup(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return g, nil
}

// sortClauses maps list sort keys to ORDER BY expressions. Keys are validated
// by the service; anything else falls back to latest.
var sortClauses = map[string]string{
	SortLatest:     "created_at DESC",
	SortMostPosted: "post_count DESC, created_at DESC",
	SortMostLiked:  "like_count DESC, created_at DESC",
	SortMostBadge:  "cardinality(badges) DESC, created_at DESC",
}

// List retrieves a page of groups matching the filter, plus the total match count
func (r *Repository) List(ctx context.Context, params ListParams) ([]*Group, int, error) {
	where := `
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		  AND ($2::boolean IS NULL OR is_public = $2)
	`

	var total int
	countQuery := `SELECT COUNT(*) FROM groups` + where
	if err := r.db.QueryRowContext(ctx, countQuery, params.Keyword, params.IsPublic).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count groups: %w", err)
	}

	orderBy, ok := sortClauses[params.SortBy]
	if !ok {
		orderBy = sortClauses[SortLatest]
	}

	query := fmt.Sprintf(
		`SELECT %s FROM groups %s ORDER BY %s LIMIT $3 OFFSET $4`,
		groupColumns, where, orderBy,
	)

	rows, err := r.db.QueryContext(ctx, query, params.Keyword, params.IsPublic, params.Limit, params.Skip)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}

	return groups, total, nil
}

// Update applies a partial update to a group. Absent fields keep their stored values.
func (r *Repository) Update(ctx context.Context, id string, req *UpdateGroupRequest) (*Group, error) {
	query := `
		UPDATE groups
		SET name = COALESCE($2, name),
		    image_url = COALESCE($3, image_url),
		    introduction = COALESCE($4, introduction),
		    is_public = COALESCE($5, is_public)
		WHERE id = $1
		RETURNING ` + groupColumns

	g, err := scanGroup(r.db.QueryRowContext(ctx, query, id, req.Name, req.ImageURL, req.Introduction, req.IsPublic))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return g, nil
}

// Delete removes a group. Posts and comments cascade at the schema level.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// IncrementLikes bumps the like counter in-place and returns the new value.
// The increment happens inside the UPDATE so concurrent likes are not lost.
func (r *Repository) IncrementLikes(ctx context.Context, id string) (int, error) {
	query := `
		UPDATE groups
		SET like_count = like_count + 1
		WHERE id = $1
		RETURNING like_count
	`

	var likeCount int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&likeCount); err != nil {
		return 0, fmt.Errorf("failed to increment group likes: %w", err)
	}

	return likeCount, nil
}

// UpdateBadges persists the badge set in a single write
func (r *Repository) UpdateBadges(ctx context.Context, id string, badges []string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE groups SET badges = $2 WHERE id = $1`, id, pq.Array(badges))
	if err != nil {
		return fmt.Errorf("failed to update group badges: %w", err)
	}
	return nil
}

// CountPostsSince counts the group's posts created at or after since
func (r *Repository) CountPostsSince(ctx context.Context, groupID string, since time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM posts WHERE group_id = $1 AND created_at >= $2`
	if err := r.db.QueryRowContext(ctx, query, groupID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recent posts: %w", err)
	}
	return count, nil
}

// CountPosts counts all posts belonging to the group
func (r *Repository) CountPosts(ctx context.Context, groupID string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM posts WHERE group_id = $1`
	if err := r.db.QueryRowContext(ctx, query, groupID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// HasPostWithLikes reports whether any of the group's posts reached minLikes
func (r *Repository) HasPostWithLikes(ctx context.Context, groupID string, minLikes int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM posts WHERE group_id = $1 AND likes >= $2)`
	if err := r.db.QueryRowContext(ctx, query, groupID, minLikes).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check post likes: %w", err)
	}
	return exists, nil
}
