package comment

import "time"

// Comment represents a comment on a post. PasswordHash is the bcrypt hash of
// the owner secret and is never serialized.
type Comment struct {
	ID           string
	PostID       string
	Nickname     string
	Content      string
	PasswordHash string
	CreatedAt    time.Time
}
