package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/giftly/giftcart/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ExperienceRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewExperienceRepo(db *dbpg.DB) *ExperienceRepository {
	return &ExperienceRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) error {
	query := `INSERT INTO experiences (id, title, price, image_url, location, duration, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Price, e.ImageURL, e.Location, e.Duration, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert experience: %w", err)
	}

	e.CreatedAt = now
	e.UpdatedAt = now
	return nil
}

func (r *ExperienceRepository) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	query := `SELECT id, title, price, image_url, location, duration, created_at, updated_at
			  FROM experiences
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}

	var e domain.Experience
	if err = row.Scan(
		&e.ID, &e.Title, &e.Price, &e.ImageURL,
		&e.Location, &e.Duration, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		if isNoRows(err) {
			return nil, domain.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("scan experience: %w", err)
	}

	return &e, nil
}

func (r *ExperienceRepository) List(ctx context.Context) ([]*domain.Experience, error) {
	query := `SELECT id, title, price, image_url, location, duration, created_at, updated_at
			  FROM experiences
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	defer rows.Close()

	var res []*domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Price, &e.ImageURL,
			&e.Location, &e.Duration, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
