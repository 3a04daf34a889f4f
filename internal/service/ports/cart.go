package ports

import (
	"context"

	"github.com/giftly/giftcart/internal/domain"
)

// RemoteCart is the authenticated backing store for cart lines, one row per
// (user, experience). Mutations are applied to memory only after the store
// call succeeds.
type RemoteCart interface {
	Load(ctx context.Context, userID string) ([]domain.CartItem, error)
	// AddItem increments the line atomically in the store and returns the
	// resulting quantity, so concurrent adds never lose an update.
	AddItem(ctx context.Context, userID, experienceID string) (int, error)
	SetQuantity(ctx context.Context, userID, experienceID string, quantity int) error
	RemoveItem(ctx context.Context, userID, experienceID string) error
	Clear(ctx context.Context, userID string) error
}

// LocalCart is the anonymous backing store: the full cart serialized as one
// JSON blob under a fixed device key. Writes are local and synchronous.
type LocalCart interface {
	Load() ([]domain.CartItem, error)
	Save(items []domain.CartItem) error
	Clear() error
}
