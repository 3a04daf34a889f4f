package ports

import (
	"context"

	"github.com/giftly/giftcart/internal/domain"
)

type Catalog interface {
	GetExperienceByID(ctx context.Context, id string) (*domain.Experience, error)
}
