package ports

import (
	"context"

	"github.com/giftly/giftcart/internal/domain"
)

// CheckoutNotifier is a fire-and-forget side channel for user-visible
// messages. It is not part of the checkout correctness contract.
type CheckoutNotifier interface {
	NotifyCheckoutCompleted(ctx context.Context, booking *domain.Booking, itemCount int)
	NotifyCheckoutFailed(ctx context.Context, userID string, reason string)
}
