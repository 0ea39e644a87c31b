package application

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector/internal/domain/entity"
	repo "github.com/devconnector/devconnector/internal/domain/repository"
)

// PostService owns the post aggregate: creation with an author snapshot,
// likes (unique per user) and embedded comments.
type PostService struct {
	Posts  repo.PostRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, logger *logrus.Logger) *PostService {
	return &PostService{Posts: posts, Users: users, Logger: logger}
}

// Create snapshots the author's current name and avatar into the post; they
// are not re-resolved on later reads.
func (s *PostService) Create(authorID, text string) (*entity.Post, error) {
	u, err := s.Users.GetByID(authorID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	p := &entity.Post{
		UserID:    authorID,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Text:      text,
		Likes:     []string{},
		Comments:  []entity.Comment{},
	}
	if err := s.Posts.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all posts, newest-created-first.
func (s *PostService) List() ([]entity.Post, error) {
	return s.Posts.List()
}

// Get returns one post by id.
func (s *PostService) Get(postID string) (*entity.Post, error) {
	p, err := s.Posts.GetByID(postID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	return p, err
}

// Delete removes a post; only its author may do so.
func (s *PostService) Delete(postID, requesterID string) error {
	p, err := s.Posts.GetByID(postID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return err
	}
	if err := authorize(p.UserID, requesterID); err != nil {
		return err
	}
	return s.Posts.Delete(postID)
}

// Like records userID on the post's likes, newest-first. A second like by
// the same user is a conflict.
func (s *PostService) Like(postID, userID string) ([]string, error) {
	p, err := s.Posts.GetByID(postID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	if slices.Contains(p.Likes, userID) {
		return nil, ErrAlreadyLiked
	}
	p.Likes = append([]string{userID}, p.Likes...)
	if err := s.Posts.Update(p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// Unlike removes userID from the post's likes; unliking a post the user
// never liked is a conflict.
func (s *PostService) Unlike(postID, userID string) ([]string, error) {
	p, err := s.Posts.GetByID(postID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	idx := slices.Index(p.Likes, userID)
	if idx < 0 {
		return nil, ErrNotLiked
	}
	p.Likes = slices.Delete(p.Likes, idx, idx+1)
	if err := s.Posts.Update(p); err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// AddComment prepends a comment with its own generated identity and an
// author snapshot, and returns the updated comment list.
func (s *PostService) AddComment(postID, authorID, text string) ([]entity.Comment, error) {
	u, err := s.Users.GetByID(authorID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	p, err := s.Posts.GetByID(postID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	c := entity.Comment{
		ID:        uuid.NewString(),
		UserID:    authorID,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		Text:      text,
		CreatedAt: time.Now(),
	}
	p.Comments = append([]entity.Comment{c}, p.Comments...)
	if err := s.Posts.Update(p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// RemoveComment removes a comment by identity, not position; only the
// comment's own author may remove it.
func (s *PostService) RemoveComment(postID, commentID, requesterID string) ([]entity.Comment, error) {
	p, err := s.Posts.GetByID(postID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(p.Comments, func(c entity.Comment) bool { return c.ID == commentID })
	if idx < 0 {
		return nil, ErrCommentNotFound
	}
	if err := authorize(p.Comments[idx].UserID, requesterID); err != nil {
		return nil, err
	}
	p.Comments = slices.Delete(p.Comments, idx, idx+1)
	if err := s.Posts.Update(p); err != nil {
		return nil, err
	}
	return p.Comments, nil
}
