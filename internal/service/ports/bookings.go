package ports

import (
	"context"

	"github.com/giftly/giftcart/internal/domain"
)

type BookingRepo interface {
	// CreateWithItems persists the booking and all of its items in a single
	// transaction: either everything commits or nothing does.
	// Returns domain.ErrDuplicateCheckout when the booking's idempotency key
	// was already used.
	CreateWithItems(ctx context.Context, b *domain.Booking, items []*domain.BookingItem) error
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}
