package service

import (
	"context"
	"fmt"

	"github.com/giftly/giftcart/internal/domain"
	"github.com/google/uuid"
)

// CatalogRepo is the persistence side of the catalog.
type CatalogRepo interface {
	Create(ctx context.Context, e *domain.Experience) error
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context) ([]*domain.Experience, error)
}

type CatalogService struct {
	repo CatalogRepo
}

func NewCatalogService(repo CatalogRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Create(ctx context.Context, input domain.CreateExperienceInput) (*domain.Experience, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}

	exp := &domain.Experience{
		ID:       uuid.New().String(),
		Title:    input.Title,
		Price:    input.Price,
		ImageURL: input.ImageURL,
		Location: input.Location,
		Duration: input.Duration,
	}

	if err := s.repo.Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}

	return exp, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Experience, error) {
	return s.repo.List(ctx)
}

// GetExperienceByID satisfies the catalog port the cache fetches through.
func (s *CatalogService) GetExperienceByID(ctx context.Context, id string) (*domain.Experience, error) {
	return s.repo.GetByID(ctx, id)
}
