package group

import "time"

// Group represents a memory group in the system. PasswordHash is the bcrypt
// hash of the owner secret and is never serialized.
type Group struct {
	ID           string
	Name         string
	ImageURL     *string
	Introduction *string
	IsPublic     bool
	PasswordHash string
	LikeCount    int
	PostCount    int
	Badges       []string
	CreatedAt    time.Time
}

// HasBadge reports whether the group already earned the named badge
func (g *Group) HasBadge(name string) bool {
	for _, b := range g.Badges {
		if b == name {
			return true
		}
	}
	return false
}
