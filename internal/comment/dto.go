package comment

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateCommentRequest represents the request to create a comment on a post
type CreateCommentRequest struct {
	Nickname string `json:"nickname" validate:"required,min=1,max=50"`
	Content  string `json:"content" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the request against its field constraints
func (r *CreateCommentRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateCommentRequest represents the request to update a comment. Absent
// fields leave the stored value unchanged.
type UpdateCommentRequest struct {
	Password string  `json:"password"`
	Nickname *string `json:"nickname,omitempty" validate:"omitempty,min=1,max=50"`
	Content  *string `json:"content,omitempty"`
}

// Validate checks the request against its field constraints
func (r *UpdateCommentRequest) Validate() error {
	return validate.Struct(r)
}

// PasswordRequest carries the owner secret for gated operations
type PasswordRequest struct {
	Password string `json:"password"`
}

// CommentResponse represents the response for a comment
type CommentResponse struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentListResponse is the paginated payload for the comment list endpoint
type CommentListResponse struct {
	CurrentPage    int                `json:"currentPage"`
	TotalPages     int                `json:"totalPages"`
	TotalItemCount int                `json:"totalItemCount"`
	Data           []*CommentResponse `json:"data"`
}

// ToResponse converts a Comment model to a CommentResponse DTO
func (c *Comment) ToResponse() *CommentResponse {
	return &CommentResponse{
		ID:        c.ID,
		Nickname:  c.Nickname,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}
