package post

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Repository handles post data persistence on Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new post repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const postColumns = `id, group_id, nickname, title, content, image_url, tags, location, memory_time, is_public, password_hash, likes, comment_count, created_at`

func scanPost(row interface{ Scan(...interface{}) error }) (*Post, error) {
	p := &Post{}
	err := row.Scan(
		&p.ID,
		&p.GroupID,
		&p.Nickname,
		&p.Title,
		&p.Content,
		&p.ImageURL,
		pq.Array(&p.Tags),
		&p.Location,
		&p.MemoryTime,
		&p.IsPublic,
		&p.PasswordHash,
		&p.Likes,
		&p.CommentCount,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new post into the database
func (r *Repository) Create(ctx context.Context, p *Post) error {
	query := `
		INSERT INTO posts (id, group_id, nickname, title, content, image_url, tags, location, memory_time, is_public, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING likes, comment_count, created_at
	`

	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	err := r.db.QueryRowContext(ctx, query,
		p.ID, p.GroupID, p.Nickname, p.Title, p.Content, p.ImageURL,
		pq.Array(tags), p.Location, p.MemoryTime, p.IsPublic, p.PasswordHash,
	).Scan(&p.Likes, &p.CommentCount, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	p, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return p, nil
}

var sortClauses = map[string]string{
	SortLatest:        "created_at DESC",
	SortMostCommented: "comment_count DESC, created_at DESC",
	SortMostLiked:     "likes DESC, created_at DESC",
}

// ListByGroup retrieves a page of the group's posts, plus the total match
// count. The keyword matches the title or any tag, case-insensitively.
func (r *Repository) ListByGroup(ctx context.Context, params ListParams) ([]*Post, int, error) {
	where := `
		WHERE group_id = $1
		  AND ($2::boolean IS NULL OR is_public = $2)
		  AND ($3 = ''
		       OR title ILIKE '%' || $3 || '%'
		       OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE '%' || $3 || '%'))
	`

	var total int
	countQuery := `SELECT COUNT(*) FROM posts` + where
	if err := r.db.QueryRowContext(ctx, countQuery, params.GroupID, params.IsPublic, params.Keyword).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	orderBy, ok := sortClauses[params.SortBy]
	if !ok {
		orderBy = sortClauses[SortLatest]
	}

	query := fmt.Sprintf(
		`SELECT %s FROM posts %s ORDER BY %s LIMIT $4 OFFSET $5`,
		postColumns, where, orderBy,
	)

	rows, err := r.db.QueryContext(ctx, query, params.GroupID, params.IsPublic, params.Keyword, params.Limit, params.Skip)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, total, nil
}

// Update applies a partial update to a post. Absent fields keep their stored values.
func (r *Repository) Update(ctx context.Context, id string, req *UpdatePostRequest) (*Post, error) {
	query := `
		UPDATE posts
		SET nickname = COALESCE($2, nickname),
		    title = COALESCE($3, title),
		    content = COALESCE($4, content),
		    image_url = COALESCE($5, image_url),
		    tags = COALESCE($6, tags),
		    location = COALESCE($7, location),
		    memory_time = COALESCE($8, memory_time),
		    is_public = COALESCE($9, is_public)
		WHERE id = $1
		RETURNING ` + postColumns

	// A nil tags slice encodes as NULL, so COALESCE keeps the stored tags
	var tags interface{}
	if req.Tags != nil {
		tags = pq.Array(req.Tags)
	}

	p, err := scanPost(r.db.QueryRowContext(ctx, query,
		id, req.Nickname, req.Title, req.Content, req.ImageURL,
		tags, req.Location, req.Moment, req.IsPublic,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return p, nil
}

// Delete removes a post. Comments cascade at the schema level.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// IncrementLikes bumps the like counter in-place and returns the new value
func (r *Repository) IncrementLikes(ctx context.Context, id string) (int, error) {
	query := `
		UPDATE posts
		SET likes = likes + 1
		WHERE id = $1
		RETURNING likes
	`

	var likes int
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&likes); err != nil {
		return 0, fmt.Errorf("failed to increment post likes: %w", err)
	}

	return likes, nil
}

// GroupExists reports whether the parent group exists
func (r *Repository) GroupExists(ctx context.Context, groupID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM groups WHERE id = $1)`
	if err := r.db.QueryRowContext(ctx, query, groupID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check group: %w", err)
	}
	return exists, nil
}

// AddToGroupPostCount adjusts the group's denormalized post counter in-place
func (r *Repository) AddToGroupPostCount(ctx context.Context, groupID string, delta int) error {
	query := `UPDATE groups SET post_count = GREATEST(post_count + $2, 0) WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, groupID, delta); err != nil {
		return fmt.Errorf("failed to adjust group post count: %w", err)
	}
	return nil
}
