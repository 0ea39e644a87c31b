package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/devconnector/devconnector/internal/domain/entity"
	repo "github.com/devconnector/devconnector/internal/domain/repository"
	"github.com/devconnector/devconnector/pkg/helpers"
	"github.com/devconnector/devconnector/pkg/mailer"
	tpl "github.com/devconnector/devconnector/pkg/mailer/templates"
)

// UserService covers account lifecycle: registration, login, token refresh,
// the caller identity record, avatar upload and search.
type UserService struct {
	Repo            repo.UserRepository
	JWT             *helpers.JWTManager
	GCS             *storage.Client
	GCSBucket       string
	Logger          *logrus.Logger
	ES              *elasticsearch.Client
	ESProfilesIndex string
	Pub             *helpers.RabbitPublisher
	MailEnabled     bool
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func NewUserService(repo repo.UserRepository, jwt *helpers.JWTManager, gcs *storage.Client, gcsBucket string, logger *logrus.Logger, es *elasticsearch.Client, esIndex string, pub *helpers.RabbitPublisher, mailEnabled bool) *UserService {
	return &UserService{
		Repo:            repo,
		JWT:             jwt,
		GCS:             gcs,
		GCSBucket:       gcsBucket,
		Logger:          logger,
		ES:              es,
		ESProfilesIndex: esIndex,
		Pub:             pub,
		MailEnabled:     mailEnabled,
	}
}

// Register creates an account with a gravatar-derived avatar and returns the
// user plus a signed token pair. The email must not be in use.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*entity.User, TokenPair, error) {
	if existing, err := s.Repo.GetByEmail(email); err == nil && existing != nil {
		return nil, TokenPair{}, ErrEmailTaken
	} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, TokenPair{}, err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	u := &entity.User{
		Name:      name,
		Email:     email,
		Password:  hash,
		AvatarURL: helpers.GravatarURL(email),
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, TokenPair{}, err
	}

	s.indexUser(ctx, u)
	s.enqueueWelcome(ctx, u)

	pair, err := s.IssueTokens(u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Authenticate validates email/password and returns the user without issuing tokens.
func (s *UserService) Authenticate(email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// IssueTokens generates an access/refresh token pair for a user.
func (s *UserService) IssueTokens(u *entity.User) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *UserService) Login(email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Authenticate(email, password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pair, err := s.IssueTokens(u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// Refresh rotates a token pair given a valid refresh token.
func (s *UserService) Refresh(refreshToken string) (TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(claims.UserID)
	if err != nil || u == nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	return s.IssueTokens(u)
}

// Me returns the caller's identity record.
func (s *UserService) Me(userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UploadAvatar stores the image in GCS and points the user's avatar at it.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return "", ErrUserNotFound
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	u.AvatarURL = url
	if err := s.Repo.Update(u); err != nil {
		return "", err
	}
	s.indexUser(ctx, u)
	return url, nil
}

func (s *UserService) indexUser(ctx context.Context, u *entity.User) {
	if s.ES == nil || s.ESProfilesIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"avatar_url": u.AvatarURL,
		"created_at": u.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESProfilesIndex, DocumentID: u.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("user_id", u.ID).Warn("es index response error")
	}
}

func (s *UserService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: tpl.Welcome,
		Data:     map[string]any{"Name": u.Name, "Email": u.Email},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
	}
}

// Search performs a multi_match search on name and email.
func (s *UserService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESProfilesIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "email"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESProfilesIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
