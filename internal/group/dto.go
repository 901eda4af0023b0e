package group

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateGroupRequest represents the request to create a new group
type CreateGroupRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Password     string  `json:"password,omitempty"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	Introduction *string `json:"introduction,omitempty"`
	IsPublic     *bool   `json:"isPublic" validate:"required"`
}

// Validate checks the request against its field constraints
func (r *CreateGroupRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateGroupRequest represents the request to update a group. Absent fields
// leave the stored value unchanged.
type UpdateGroupRequest struct {
	Password     string  `json:"password"`
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	Introduction *string `json:"introduction,omitempty"`
	IsPublic     *bool   `json:"isPublic,omitempty"`
}

// Validate checks the request against its field constraints
func (r *UpdateGroupRequest) Validate() error {
	return validate.Struct(r)
}

// PasswordRequest carries the owner secret for gated operations
type PasswordRequest struct {
	Password string `json:"password"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	Introduction *string   `json:"introduction,omitempty"`
	IsPublic     bool      `json:"isPublic"`
	LikeCount    int       `json:"likeCount"`
	PostCount    int       `json:"postCount"`
	BadgeCount   int       `json:"badgeCount"`
	Badges       []string  `json:"badges"`
	CreatedAt    time.Time `json:"createdAt"`
}

// GroupListResponse is the paginated payload for the group list endpoint
type GroupListResponse struct {
	CurrentPage    int              `json:"currentPage"`
	TotalPages     int              `json:"totalPages"`
	TotalItemCount int              `json:"totalItemCount"`
	Data           []*GroupResponse `json:"data"`
}

// PublicStatusResponse reports only the public flag of a group
type PublicStatusResponse struct {
	ID       string `json:"id"`
	IsPublic bool   `json:"isPublic"`
}

// LikeResponse carries the like count after an increment
type LikeResponse struct {
	LikeCount int `json:"likeCount"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	badges := g.Badges
	if badges == nil {
		badges = []string{}
	}
	return &GroupResponse{
		ID:           g.ID,
		Name:         g.Name,
		ImageURL:     g.ImageURL,
		Introduction: g.Introduction,
		IsPublic:     g.IsPublic,
		LikeCount:    g.LikeCount,
		PostCount:    g.PostCount,
		BadgeCount:   len(g.Badges),
		Badges:       badges,
		CreatedAt:    g.CreatedAt,
	}
}
