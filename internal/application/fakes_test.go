package application

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/devconnector/devconnector/internal/domain/entity"
	repo "github.com/devconnector/devconnector/internal/domain/repository"
)

// In-memory repositories used by the service tests. They mirror the
// persistence contract: copies in, copies out, ErrNotFound on misses.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]entity.User{}}
}

func (r *memUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]entity.Profile // keyed by user id
	seq      int
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: map[string]entity.Profile{}}
}

func (r *memProfileRepo) Create(p *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.seq++
	r.profiles[p.UserID] = *p
	return nil
}

func (r *memProfileRepo) GetByUserID(userID string) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (r *memProfileRepo) List() ([]entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memProfileRepo) Update(p *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.UserID]; !ok {
		return repo.ErrNotFound
	}
	r.profiles[p.UserID] = *p
	return nil
}

func (r *memProfileRepo) DeleteByUserID(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[userID]; !ok {
		return repo.ErrNotFound
	}
	delete(r.profiles, userID)
	return nil
}

type memPostRepo struct {
	mu    sync.Mutex
	posts []entity.Post // newest first
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{}
}

func (r *memPostRepo) Create(p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.posts = append([]entity.Post{*p}, r.posts...)
	return nil
}

func (r *memPostRepo) GetByID(id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memPostRepo) List() ([]entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Post, len(r.posts))
	copy(out, r.posts)
	return out, nil
}

func (r *memPostRepo) Update(p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == p.ID {
			r.posts[i] = *p
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *memPostRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.posts {
		if r.posts[i].ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *memPostRepo) DeleteByAuthor(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.posts[:0]
	for _, p := range r.posts {
		if p.UserID != userID {
			kept = append(kept, p)
		}
	}
	r.posts = kept
	return nil
}
