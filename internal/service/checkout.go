package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/giftly/giftcart/internal/domain"
	"github.com/giftly/giftcart/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultPaymentMethod = "card_on_file"
	defaultBookingNotes  = "placed via storefront checkout"
)

type CheckoutState int32

const (
	CheckoutIdle CheckoutState = iota
	CheckoutInProgress
	CheckoutSucceeded
	CheckoutFailed
)

// CheckoutCart is the slice of the cart engine the orchestrator needs.
type CheckoutCart interface {
	Items() []domain.CartItem
	ClearCart(ctx context.Context) error
}

// PriceSource supplies price snapshots for cart lines.
type PriceSource interface {
	Ensure(ctx context.Context, ids []string) []string
	Price(id string) (int64, bool)
}

// CheckoutService converts the cart snapshot into persisted Booking and
// BookingItem records. Booking and items commit in one transaction, a
// repeated invocation is rejected while one is in flight, and an
// idempotency key makes client retries safe.
type CheckoutService struct {
	cart     CheckoutCart
	prices   PriceSource
	identity ports.Identity
	bookings ports.BookingRepo
	notifier ports.CheckoutNotifier
	log      logger.Logger

	inFlight atomic.Bool
	state    atomic.Int32
}

func NewCheckoutService(
	cart CheckoutCart,
	prices PriceSource,
	identity ports.Identity,
	bookings ports.BookingRepo,
	notifier ports.CheckoutNotifier,
	log logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		prices:   prices,
		identity: identity,
		bookings: bookings,
		notifier: notifier,
		log:      log,
	}
}

func (s *CheckoutService) State() CheckoutState {
	return CheckoutState(s.state.Load())
}

// Checkout runs the full checkout for the current cart. idempotencyKey may
// be empty, in which case a fresh key is generated; passing the same key on
// a retry returns the original booking instead of creating a second one.
func (s *CheckoutService) Checkout(ctx context.Context, idempotencyKey string) (*domain.CheckoutResult, error) {
	ident := s.identity.Current()
	if !ident.Authenticated() {
		return nil, domain.ErrAuthRequired
	}

	items := s.cart.Items()
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrCheckoutInProgress
	}
	defer s.inFlight.Store(false)
	s.state.Store(int32(CheckoutInProgress))

	if idempotencyKey == "" {
		idempotencyKey = uuid.New().String()
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ExperienceID)
	}
	if degraded := s.prices.Ensure(ctx, ids); len(degraded) > 0 {
		s.log.Warn("checkout with unpriced lines",
			logger.Any("experience_ids", degraded),
		)
	}

	booking, bookingItems := s.buildBooking(ident.UserID, idempotencyKey, items)

	err := s.bookings.CreateWithItems(ctx, booking, bookingItems)
	switch {
	case errors.Is(err, domain.ErrDuplicateCheckout):
		return s.resolveDuplicate(ctx, idempotencyKey)
	case err != nil:
		s.state.Store(int32(CheckoutFailed))
		go s.notifier.NotifyCheckoutFailed(context.WithoutCancel(ctx), ident.UserID, "checkout failed, your cart is untouched")
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err := s.cart.ClearCart(ctx); err != nil {
		// The booking is committed; an unclear cart is an annoyance, not a
		// lost order.
		s.log.Error("clear cart after checkout",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}

	s.state.Store(int32(CheckoutSucceeded))
	s.log.Info("checkout completed",
		logger.String("booking_id", booking.ID),
		logger.String("user_id", ident.UserID),
		logger.Int64("total_amount", booking.TotalAmount),
	)
	go s.notifier.NotifyCheckoutCompleted(context.WithoutCancel(ctx), booking, len(bookingItems))

	return &domain.CheckoutResult{
		BookingID:   booking.ID,
		TotalAmount: booking.TotalAmount,
	}, nil
}

func (s *CheckoutService) buildBooking(userID, idempotencyKey string, items []domain.CartItem) (*domain.Booking, []*domain.BookingItem) {
	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:             uuid.New().String(),
		UserID:         userID,
		Status:         domain.BookingStatusConfirmed,
		PaymentMethod:  defaultPaymentMethod,
		Notes:          defaultBookingNotes,
		IdempotencyKey: idempotencyKey,
		BookingDate:    now,
		CreatedAt:      now,
	}

	bookingItems := make([]*domain.BookingItem, 0, len(items))
	for _, item := range items {
		price, _ := s.prices.Price(item.ExperienceID) // unpriced lines contribute zero
		booking.TotalAmount += price * int64(item.Quantity)
		bookingItems = append(bookingItems, &domain.BookingItem{
			ID:             uuid.New().String(),
			BookingID:      booking.ID,
			ExperienceID:   item.ExperienceID,
			Quantity:       item.Quantity,
			PriceAtBooking: price,
		})
	}
	return booking, bookingItems
}

// ListBookings returns the current user's order history, newest first.
func (s *CheckoutService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	ident := s.identity.Current()
	if !ident.Authenticated() {
		return nil, domain.ErrAuthRequired
	}
	return s.bookings.ListByUser(ctx, ident.UserID)
}

// resolveDuplicate maps an idempotency-key conflict onto the booking the
// earlier attempt created: the retry observes success, not a second order.
func (s *CheckoutService) resolveDuplicate(ctx context.Context, key string) (*domain.CheckoutResult, error) {
	existing, err := s.bookings.GetByIdempotencyKey(ctx, key)
	if err != nil {
		s.state.Store(int32(CheckoutFailed))
		return nil, fmt.Errorf("resolve duplicate checkout: %w", err)
	}

	if err := s.cart.ClearCart(ctx); err != nil {
		s.log.Error("clear cart after duplicate checkout",
			logger.String("booking_id", existing.ID),
			logger.String("error", err.Error()),
		)
	}

	s.state.Store(int32(CheckoutSucceeded))
	s.log.Info("duplicate checkout resolved to existing booking",
		logger.String("booking_id", existing.ID),
	)
	return &domain.CheckoutResult{
		BookingID:        existing.ID,
		TotalAmount:      existing.TotalAmount,
		AlreadyProcessed: true,
	}, nil
}
