package entity

import (
	"time"
)

// Post is a short text update. Name and AvatarURL are snapshots of the
// author taken at creation time; they are never re-resolved. Likes holds
// user ids, newest-first, each at most once. Comments are embedded
// sub-documents, newest-first.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	Text      string    `json:"text"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment carries its own generated identity plus an author snapshot, so it
// can be removed by id and rendered without a join.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
