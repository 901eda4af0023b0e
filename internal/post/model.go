package post

import "time"

// Post represents a memory posted into a group. PasswordHash is the bcrypt
// hash of the owner secret and is never serialized.
type Post struct {
	ID           string
	GroupID      string
	Nickname     string
	Title        string
	Content      string
	ImageURL     *string
	Tags         []string
	Location     *string
	MemoryTime   time.Time
	IsPublic     bool
	PasswordHash string
	Likes        int
	CommentCount int
	CreatedAt    time.Time
}
