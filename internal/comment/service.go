package comment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"zogakzip/pkg/secret"
)

// Common errors
var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrWrongPassword   = errors.New("wrong password")
)

// ListParams describes the page slice for a comment listing. Comments are
// always ordered newest first.
type ListParams struct {
	PostID string
	Skip   int
	Limit  int
}

// Store is the persistence surface the comment service depends on. The post
// methods cover parent existence checks and comment_count maintenance.
type Store interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id string) (*Comment, error)
	ListByPost(ctx context.Context, params ListParams) ([]*Comment, int, error)
	Update(ctx context.Context, id string, req *UpdateCommentRequest) (*Comment, error)
	Delete(ctx context.Context, id string) error
	PostExists(ctx context.Context, postID string) (bool, error)
	AddToPostCommentCount(ctx context.Context, postID string, delta int) error
}

// Service handles comment business logic
type Service struct {
	store Store
}

// NewService creates a new comment service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create persists a new comment and bumps the post's comment counter
func (s *Service) Create(ctx context.Context, postID string, req *CreateCommentRequest) (*Comment, error) {
	exists, err := s.store.PostExists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	hash, err := secret.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	c := &Comment{
		ID:           uuid.NewString(),
		PostID:       postID,
		Nickname:     req.Nickname,
		Content:      req.Content,
		PasswordHash: hash,
	}

	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}

	if err := s.store.AddToPostCommentCount(ctx, postID, 1); err != nil {
		return nil, err
	}

	return c, nil
}

// ListByPost retrieves a page of the post's comments, newest first
func (s *Service) ListByPost(ctx context.Context, params ListParams) ([]*Comment, int, error) {
	exists, err := s.store.PostExists(ctx, params.PostID)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, ErrPostNotFound
	}

	return s.store.ListByPost(ctx, params)
}

// Update applies a partial update after checking the owner secret
func (s *Service) Update(ctx context.Context, id string, req *UpdateCommentRequest) (*Comment, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCommentNotFound
	}
	if !secret.Verify(existing.PasswordHash, req.Password) {
		return nil, ErrWrongPassword
	}

	updated, err := s.store.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrCommentNotFound
	}
	return updated, nil
}

// Delete removes a comment after checking the owner secret and decrements the
// post's comment counter.
func (s *Service) Delete(ctx context.Context, id, password string) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCommentNotFound
	}
	if !secret.Verify(existing.PasswordHash, password) {
		return ErrWrongPassword
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	return s.store.AddToPostCommentCount(ctx, existing.PostID, -1)
}
