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

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `
	id, user_id, name, avatar_url, body, likes, comments, created_at, updated_at`

func scanPost(row pgx.Row, p *entity.Post) error {
	return row.Scan(&p.ID, &p.UserID, &p.Name, &p.AvatarURL, &p.Text,
		&p.Likes, &p.Comments, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) Create(p *entity.Post) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (user_id, name, avatar_url, body, likes, comments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Name, p.AvatarURL, p.Text, p.Likes, p.Comments)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) GetByID(id string) (*entity.Post, error) {
	if !validID(id) {
		return nil, repository.ErrNotFound
	}
	ctx := context.Background()
	p := &entity.Post{}

	row := r.pool.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE id = $1
	`, id)

	if err := scanPost(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *PostRepository) List() ([]entity.Post, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]entity.Post, 0)
	for rows.Next() {
		var p entity.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) Update(p *entity.Post) error {
	ctx := context.Background()
	p.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET body = $1, likes = $2, comments = $3, updated_at = $4
		WHERE id = $5
	`, p.Text, p.Likes, p.Comments, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}

	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *PostRepository) Delete(id string) error {
	if !validID(id) {
		return repository.ErrNotFound
	}
	res, err := r.pool.Exec(context.Background(), `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) DeleteByAuthor(userID string) error {
	if !validID(userID) {
		return repository.ErrNotFound
	}
	_, err := r.pool.Exec(context.Background(), `DELETE FROM posts WHERE user_id = $1`, userID)
	return err
}

var _ repository.PostRepository = (*PostRepository)(nil)
