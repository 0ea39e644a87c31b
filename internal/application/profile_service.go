package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector/internal/domain/entity"
	repo "github.com/devconnector/devconnector/internal/domain/repository"
	"github.com/devconnector/devconnector/pkg/helpers"
)

// ProfileService owns the profile aggregate: upsert, the embedded
// experience/education sub-documents, the GitHub repo proxy and the account
// deletion cascade.
type ProfileService struct {
	Profiles       repo.ProfileRepository
	Users          repo.UserRepository
	Posts          repo.PostRepository
	Redis          *redis.Client
	Github         *helpers.GithubClient
	GithubCacheTTL time.Duration
	Logger         *logrus.Logger
}

// ProfileInput carries the upsert payload. Status and Skills are required at
// the binding layer; everything else is optional and, on update, a zero
// value leaves the stored value untouched.
type ProfileInput struct {
	Company        string
	Website        string
	Location       string
	Bio            string
	Status         string
	GithubUsername string
	Skills         string // comma-separated
	Youtube        string
	Twitter        string
	Facebook       string
	Linkedin       string
	Instagram      string
}

func NewProfileService(profiles repo.ProfileRepository, users repo.UserRepository, posts repo.PostRepository, rdb *redis.Client, gh *helpers.GithubClient, ghTTL time.Duration, logger *logrus.Logger) *ProfileService {
	return &ProfileService{
		Profiles:       profiles,
		Users:          users,
		Posts:          posts,
		Redis:          rdb,
		Github:         gh,
		GithubCacheTTL: ghTTL,
		Logger:         logger,
	}
}

// ParseSkills turns comma-separated input into an ordered trimmed list,
// dropping empty tokens.
func ParseSkills(csv string) []string {
	parts := strings.Split(csv, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// Upsert creates the caller's profile or partially updates it: provided
// fields override, absent fields keep their prior values.
func (s *ProfileService) Upsert(ownerID string, in ProfileInput) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		p = &entity.Profile{
			UserID:     ownerID,
			Skills:     []string{},
			Experience: []entity.Experience{},
			Education:  []entity.Education{},
		}
		applyProfileFields(p, in)
		if err := s.Profiles.Create(p); err != nil {
			return nil, err
		}
		return p, nil
	}
	if err != nil {
		return nil, err
	}

	applyProfileFields(p, in)
	if err := s.Profiles.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func applyProfileFields(p *entity.Profile, in ProfileInput) {
	if in.Company != "" {
		p.Company = in.Company
	}
	if in.Website != "" {
		p.Website = in.Website
	}
	if in.Location != "" {
		p.Location = in.Location
	}
	if in.Bio != "" {
		p.Bio = in.Bio
	}
	if in.Status != "" {
		p.Status = in.Status
	}
	if in.GithubUsername != "" {
		p.GithubUsername = in.GithubUsername
	}
	if in.Skills != "" {
		p.Skills = ParseSkills(in.Skills)
	}
	if in.Youtube != "" {
		p.Social.Youtube = in.Youtube
	}
	if in.Twitter != "" {
		p.Social.Twitter = in.Twitter
	}
	if in.Facebook != "" {
		p.Social.Facebook = in.Facebook
	}
	if in.Linkedin != "" {
		p.Social.Linkedin = in.Linkedin
	}
	if in.Instagram != "" {
		p.Social.Instagram = in.Instagram
	}
}

// Me returns the caller's profile.
func (s *ProfileService) Me(ownerID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	return p, err
}

// List returns all profiles.
func (s *ProfileService) List() ([]entity.Profile, error) {
	return s.Profiles.List()
}

// GetByUserID returns one profile by its owning user id.
func (s *ProfileService) GetByUserID(userID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	return p, err
}

// AddExperience prepends a new entry (newest-first) and persists the whole
// profile. Field presence is enforced at the binding layer.
func (s *ProfileService) AddExperience(ownerID string, exp entity.Experience) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	exp.ID = uuid.NewString()
	p.Experience = append([]entity.Experience{exp}, p.Experience...)
	if err := s.Profiles.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveExperience removes the entry with the given id. An unknown id is a
// no-op: the profile is still persisted and returned unchanged.
func (s *ProfileService) RemoveExperience(ownerID, entryID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	kept := p.Experience[:0]
	for _, e := range p.Experience {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	p.Experience = kept
	if err := s.Profiles.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddEducation mirrors AddExperience for education entries.
func (s *ProfileService) AddEducation(ownerID string, edu entity.Education) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	edu.ID = uuid.NewString()
	p.Education = append([]entity.Education{edu}, p.Education...)
	if err := s.Profiles.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// RemoveEducation mirrors RemoveExperience, including the unknown-id no-op.
func (s *ProfileService) RemoveEducation(ownerID, entryID string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByUserID(ownerID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	kept := p.Education[:0]
	for _, e := range p.Education {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	p.Education = kept
	if err := s.Profiles.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteAccount cascades: the owner's posts, then profile, then user row.
// Comments the owner left on other authors' posts keep their snapshot and
// remain in place.
func (s *ProfileService) DeleteAccount(ownerID string) error {
	if err := s.Posts.DeleteByAuthor(ownerID); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	if err := s.Profiles.DeleteByUserID(ownerID); err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}
	if err := s.Users.Delete(ownerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

// GithubRepos proxies the GitHub repo listing for a username, cached in
// Redis to keep within the upstream rate limit.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]helpers.GithubRepo, error) {
	key := "github:repos:" + username
	if s.Redis != nil {
		var cached []helpers.GithubRepo
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	repos, err := s.Github.Repos(ctx, username)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, repos, s.GithubCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("github cache write failed")
		}
	}
	return repos, nil
}
