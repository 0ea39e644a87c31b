package application

import "errors"

// Sentinel errors returned by the services. The handler layer maps these to
// HTTP statuses; anything else is treated as an opaque store failure.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrCommentNotFound    = errors.New("comment not found")
	ErrNotOwner           = errors.New("not authorized")
	ErrAlreadyLiked       = errors.New("post already liked")
	ErrNotLiked           = errors.New("post has not been liked")
)
