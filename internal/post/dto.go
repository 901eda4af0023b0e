package post

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreatePostRequest represents the request to create a post in a group
type CreatePostRequest struct {
	Nickname string     `json:"nickname" validate:"required,min=1,max=50"`
	Title    string     `json:"title" validate:"required,min=1,max=200"`
	Content  string     `json:"content" validate:"required"`
	Password string     `json:"password" validate:"required"`
	ImageURL *string    `json:"imageUrl,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
	Location *string    `json:"location,omitempty"`
	Moment   *time.Time `json:"moment,omitempty"`
	IsPublic *bool      `json:"isPublic,omitempty"`
}

// Validate checks the request against its field constraints
func (r *CreatePostRequest) Validate() error {
	return validate.Struct(r)
}

// UpdatePostRequest represents the request to update a post. Absent fields
// leave the stored value unchanged.
type UpdatePostRequest struct {
	Password string     `json:"password"`
	Nickname *string    `json:"nickname,omitempty" validate:"omitempty,min=1,max=50"`
	Title    *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content  *string    `json:"content,omitempty"`
	ImageURL *string    `json:"imageUrl,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
	Location *string    `json:"location,omitempty"`
	Moment   *time.Time `json:"moment,omitempty"`
	IsPublic *bool      `json:"isPublic,omitempty"`
}

// Validate checks the request against its field constraints
func (r *UpdatePostRequest) Validate() error {
	return validate.Struct(r)
}

// PasswordRequest carries the owner secret for gated operations
type PasswordRequest struct {
	Password string `json:"password"`
}

// PostResponse represents the response for a post
type PostResponse struct {
	ID           string    `json:"id"`
	GroupID      string    `json:"groupId"`
	Nickname     string    `json:"nickname"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	Tags         []string  `json:"tags"`
	Location     *string   `json:"location,omitempty"`
	Moment       time.Time `json:"moment"`
	IsPublic     bool      `json:"isPublic"`
	LikeCount    int       `json:"likeCount"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PostListResponse is the paginated payload for the post list endpoint
type PostListResponse struct {
	CurrentPage    int             `json:"currentPage"`
	TotalPages     int             `json:"totalPages"`
	TotalItemCount int             `json:"totalItemCount"`
	Data           []*PostResponse `json:"data"`
}

// PublicStatusResponse reports only the public flag of a post
type PublicStatusResponse struct {
	ID       string `json:"id"`
	IsPublic bool   `json:"isPublic"`
}

// LikeResponse carries the like count after an increment
type LikeResponse struct {
	LikeCount int `json:"likeCount"`
}

// ToResponse converts a Post model to a PostResponse DTO
func (p *Post) ToResponse() *PostResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return &PostResponse{
		ID:           p.ID,
		GroupID:      p.GroupID,
		Nickname:     p.Nickname,
		Title:        p.Title,
		Content:      p.Content,
		ImageURL:     p.ImageURL,
		Tags:         tags,
		Location:     p.Location,
		Moment:       p.MemoryTime,
		IsPublic:     p.IsPublic,
		LikeCount:    p.Likes,
		CommentCount: p.CommentCount,
		CreatedAt:    p.CreatedAt,
	}
}
