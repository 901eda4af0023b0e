package group

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"zogakzip/pkg/secret"
)

// Common errors
var (
	ErrGroupNotFound  = errors.New("group not found")
	ErrWrongPassword  = errors.New("wrong password")
	ErrInvalidSortKey = errors.New("invalid sort key")
)

// Sort options for the group list
const (
	SortLatest     = "latest"
	SortMostPosted = "mostPosted"
	SortMostLiked  = "mostLiked"
	SortMostBadge  = "mostBadge"
)

// ListParams describes filtering, ordering and the page slice for a listing
type ListParams struct {
	Keyword  string
	IsPublic *bool
	SortBy   string
	Skip     int
	Limit    int
}

// Store is the persistence surface the group service depends on. The post
// counting methods back badge evaluation, which reads child post data.
type Store interface {
	Create(ctx context.Context, g *Group) error
	GetByID(ctx context.Context, id string) (*Group, error)
	List(ctx context.Context, params ListParams) ([]*Group, int, error)
	Update(ctx context.Context, id string, req *UpdateGroupRequest) (*Group, error)
	Delete(ctx context.Context, id string) error
	IncrementLikes(ctx context.Context, id string) (int, error)
	UpdateBadges(ctx context.Context, id string, badges []string) error
	CountPostsSince(ctx context.Context, groupID string, since time.Time) (int, error)
	CountPosts(ctx context.Context, groupID string) (int, error)
	HasPostWithLikes(ctx context.Context, groupID string, minLikes int) (bool, error)
}

// Service handles group business logic
type Service struct {
	store Store
}

// NewService creates a new group service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create persists a new group with zeroed counters and an empty badge set
func (s *Service) Create(ctx context.Context, req *CreateGroupRequest) (*Group, error) {
	hash, err := secret.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	g := &Group{
		ID:           uuid.NewString(),
		Name:         req.Name,
		ImageURL:     req.ImageURL,
		Introduction: req.Introduction,
		IsPublic:     *req.IsPublic,
		PasswordHash: hash,
		Badges:       []string{},
	}

	if err := s.store.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// List retrieves a page of groups matching the filter. Badge evaluation runs
// on every returned group before it is handed back.
func (s *Service) List(ctx context.Context, params ListParams) ([]*Group, int, error) {
	switch params.SortBy {
	case SortLatest, SortMostPosted, SortMostLiked, SortMostBadge:
	case "":
		params.SortBy = SortLatest
	default:
		return nil, 0, ErrInvalidSortKey
	}

	groups, total, err := s.store.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}

	for _, g := range groups {
		if err := s.RefreshBadges(ctx, g); err != nil {
			return nil, 0, err
		}
	}

	return groups, total, nil
}

// GetDetail retrieves a single group. Private groups require the matching
// password. Badge evaluation runs before the group is returned.
func (s *Service) GetDetail(ctx context.Context, id, password string) (*Group, error) {
	g, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}

	if !g.IsPublic && !secret.Verify(g.PasswordHash, password) {
		return nil, ErrWrongPassword
	}

	if err := s.RefreshBadges(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Update applies a partial update after checking the owner secret. The
// password is required regardless of the group's public flag.
func (s *Service) Update(ctx context.Context, id string, req *UpdateGroupRequest) (*Group, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrGroupNotFound
	}
	if !secret.Verify(existing.PasswordHash, req.Password) {
		return nil, ErrWrongPassword
	}

	updated, err := s.store.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrGroupNotFound
	}

	if err := s.RefreshBadges(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a group after checking the owner secret. Child posts and
// their comments go with it.
func (s *Service) Delete(ctx context.Context, id, password string) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrGroupNotFound
	}
	if !secret.Verify(existing.PasswordHash, password) {
		return ErrWrongPassword
	}

	return s.store.Delete(ctx, id)
}

// VerifyPassword checks read access to a group. Public groups always pass;
// private groups require the exact owner secret.
func (s *Service) VerifyPassword(ctx context.Context, id, password string) error {
	g, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if g == nil {
		return ErrGroupNotFound
	}

	if g.IsPublic {
		return nil
	}
	if !secret.Verify(g.PasswordHash, password) {
		return ErrWrongPassword
	}
	return nil
}

// Like increments the group's like count and returns the new value. The
// increment happens in-place at the storage layer so concurrent likes are
// never lost.
func (s *Service) Like(ctx context.Context, id string) (int, error) {
	g, err := s.store.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if g == nil {
		return 0, ErrGroupNotFound
	}

	return s.store.IncrementLikes(ctx, id)
}

// PublicStatus retrieves a group without password gating or badge side
// effects, for the is-public check.
func (s *Service) PublicStatus(ctx context.Context, id string) (*Group, error) {
	g, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGroupNotFound
	}
	return g, nil
}
