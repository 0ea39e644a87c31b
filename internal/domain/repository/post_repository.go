package repository

import "github.com/devconnector/devconnector/internal/domain/entity"

// PostRepository persists Post aggregates. List returns newest-created-first.
type PostRepository interface {
	Create(p *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List() ([]entity.Post, error)
	Update(p *entity.Post) error
	Delete(id string) error
	DeleteByAuthor(userID string) error
}
