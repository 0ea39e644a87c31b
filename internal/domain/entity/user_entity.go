package entity

import (
	"time"
)

// User is the account aggregate root. Password holds a bcrypt hash.
// AvatarURL starts as a gravatar URL derived from the email and may be
// replaced by an uploaded image.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
