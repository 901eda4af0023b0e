package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"zogakzip/pkg/secret"
)

// Common errors
var (
	ErrPostNotFound   = errors.New("post not found")
	ErrGroupNotFound  = errors.New("group not found")
	ErrWrongPassword  = errors.New("wrong password")
	ErrInvalidSortKey = errors.New("invalid sort key")
)

// Sort options for the post list
const (
	SortLatest        = "latest"
	SortMostCommented = "mostCommented"
	SortMostLiked     = "mostLiked"
)

// ListParams describes filtering, ordering and the page slice for a listing
type ListParams struct {
	GroupID  string
	Keyword  string
	IsPublic *bool
	SortBy   string
	Skip     int
	Limit    int
}

// Store is the persistence surface the post service depends on. The group
// methods cover parent existence checks and post_count maintenance.
type Store interface {
	Create(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id string) (*Post, error)
	ListByGroup(ctx context.Context, params ListParams) ([]*Post, int, error)
	Update(ctx context.Context, id string, req *UpdatePostRequest) (*Post, error)
	Delete(ctx context.Context, id string) error
	IncrementLikes(ctx context.Context, id string) (int, error)
	GroupExists(ctx context.Context, groupID string) (bool, error)
	AddToGroupPostCount(ctx context.Context, groupID string, delta int) error
}

// Service handles post business logic
type Service struct {
	store Store
}

// NewService creates a new post service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create persists a new post in the group and bumps the group's post counter.
// The two writes are not transactional; a crash in between leaves the counter
// stale, which is accepted best-effort behavior.
func (s *Service) Create(ctx context.Context, groupID string, req *CreatePostRequest) (*Post, error) {
	exists, err := s.store.GroupExists(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrGroupNotFound
	}

	hash, err := secret.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	p := &Post{
		ID:           uuid.NewString(),
		GroupID:      groupID,
		Nickname:     req.Nickname,
		Title:        req.Title,
		Content:      req.Content,
		ImageURL:     req.ImageURL,
		Tags:         req.Tags,
		Location:     req.Location,
		IsPublic:     true,
		PasswordHash: hash,
	}
	if req.Moment != nil {
		p.MemoryTime = *req.Moment
	} else {
		p.MemoryTime = time.Now()
	}
	if req.IsPublic != nil {
		p.IsPublic = *req.IsPublic
	}

	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.store.AddToGroupPostCount(ctx, groupID, 1); err != nil {
		return nil, err
	}

	return p, nil
}

// ListByGroup retrieves a page of the group's posts matching the filter
func (s *Service) ListByGroup(ctx context.Context, params ListParams) ([]*Post, int, error) {
	switch params.SortBy {
	case SortLatest, SortMostCommented, SortMostLiked:
	case "":
		params.SortBy = SortLatest
	default:
		return nil, 0, ErrInvalidSortKey
	}

	exists, err := s.store.GroupExists(ctx, params.GroupID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, ErrGroupNotFound
	}

	return s.store.ListByGroup(ctx, params)
}

// GetByID retrieves a single post
func (s *Service) GetByID(ctx context.Context, id string) (*Post, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// Update applies a partial update after checking the owner secret
func (s *Service) Update(ctx context.Context, id string, req *UpdatePostRequest) (*Post, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrPostNotFound
	}
	if !secret.Verify(existing.PasswordHash, req.Password) {
		return nil, ErrWrongPassword
	}

	updated, err := s.store.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrPostNotFound
	}
	return updated, nil
}

// Delete removes a post after checking the owner secret and decrements the
// parent group's post counter. Child comments cascade at the schema level.
func (s *Service) Delete(ctx context.Context, id, password string) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}
	if !secret.Verify(existing.PasswordHash, password) {
		return ErrWrongPassword
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	return s.store.AddToGroupPostCount(ctx, existing.GroupID, -1)
}

// VerifyPassword checks the owner secret. Unlike groups there is no public
// bypass: the stored secret must match exactly.
func (s *Service) VerifyPassword(ctx context.Context, id, password string) error {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}
	if !secret.Verify(p.PasswordHash, password) {
		return ErrWrongPassword
	}
	return nil
}

// Like increments the post's like count and returns the new value
func (s *Service) Like(ctx context.Context, id string) (int, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, ErrPostNotFound
	}

	return s.store.IncrementLikes(ctx, id)
}

// PublicStatus retrieves a post without password gating, for the is-public check
func (s *Service) PublicStatus(ctx context.Context, id string) (*Post, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}
