package repository

import "github.com/devconnector/devconnector/internal/domain/entity"

// ProfileRepository persists Profile aggregates. Update writes the whole
// document including the embedded sub-document arrays.
type ProfileRepository interface {
	Create(p *entity.Profile) error
	GetByUserID(userID string) (*entity.Profile, error)
	List() ([]entity.Profile, error)
	Update(p *entity.Profile) error
	DeleteByUserID(userID string) error
}
