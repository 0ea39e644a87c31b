package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devconnector/devconnector/internal/domain/entity"
	"github.com/devconnector/devconnector/internal/domain/repository"
)

// ProfileRepository stores profiles with the embedded skill/social/
// experience/education documents in JSONB columns, so an Update rewrites
// the whole aggregate in one statement.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

const profileColumns = `
	id, user_id, company, website, location, bio, status, github_username,
	skills, social, experience, education, created_at, updated_at`

func scanProfile(row pgx.Row, p *entity.Profile) error {
	return row.Scan(&p.ID, &p.UserID, &p.Company, &p.Website, &p.Location,
		&p.Bio, &p.Status, &p.GithubUsername, &p.Skills, &p.Social,
		&p.Experience, &p.Education, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProfileRepository) Create(p *entity.Profile) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (user_id, company, website, location, bio, status,
			github_username, skills, social, experience, education)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Company, p.Website, p.Location, p.Bio, p.Status,
		p.GithubUsername, p.Skills, p.Social, p.Experience, p.Education)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProfileRepository) GetByUserID(userID string) (*entity.Profile, error) {
	if !validID(userID) {
		return nil, repository.ErrNotFound
	}
	ctx := context.Background()
	p := &entity.Profile{}

	row := r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE user_id = $1
	`, userID)

	if err := scanProfile(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *ProfileRepository) List() ([]entity.Profile, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := make([]entity.Profile, 0)
	for rows.Next() {
		var p entity.Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) Update(p *entity.Profile) error {
	ctx := context.Background()
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET company = $1, website = $2, location = $3, bio = $4, status = $5,
			github_username = $6, skills = $7, social = $8, experience = $9,
			education = $10, updated_at = $11
		WHERE user_id = $12
	`, p.Company, p.Website, p.Location, p.Bio, p.Status, p.GithubUsername,
		p.Skills, p.Social, p.Experience, p.Education, p.UpdatedAt, p.UserID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *ProfileRepository) DeleteByUserID(userID string) error {
	if !validID(userID) {
		return repository.ErrNotFound
	}
	_, err := r.pool.Exec(context.Background(), `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
