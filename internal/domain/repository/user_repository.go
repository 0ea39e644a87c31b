package repository

import (
	"errors"

	"github.com/devconnector/devconnector/internal/domain/entity"
)

// ErrNotFound is returned by all repositories when the requested entity does
// not exist, including when the supplied id is not a valid identity at all.
var ErrNotFound = errors.New("not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
	Delete(id string) error
}
