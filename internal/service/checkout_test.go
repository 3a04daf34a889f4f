package service

import (
	"context"
	"testing"

	"github.com/giftly/giftcart/internal/domain"
	"github.com/giftly/giftcart/internal/identity"
	svcmocks "github.com/giftly/giftcart/internal/service/mocks"
	portmocks "github.com/giftly/giftcart/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	svc      *CheckoutService
	identity *identity.Provider
	cart     *svcmocks.MockCheckoutCart
	prices   *svcmocks.MockPriceSource
	bookings *portmocks.MockBookingRepo
	notifier *portmocks.MockCheckoutNotifier
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	cart := svcmocks.NewMockCheckoutCart(t)
	prices := svcmocks.NewMockPriceSource(t)
	bookings := portmocks.NewMockBookingRepo(t)
	notifier := portmocks.NewMockCheckoutNotifier(t)
	provider := identity.NewProvider()

	svc := NewCheckoutService(cart, prices, provider, bookings, notifier, newTestLogger(t))

	// Notifications go out on background goroutines and may land after the
	// test finishes.
	notifier.EXPECT().NotifyCheckoutCompleted(mock.Anything, mock.Anything, mock.Anything).Maybe()
	notifier.EXPECT().NotifyCheckoutFailed(mock.Anything, mock.Anything, mock.Anything).Maybe()

	return &checkoutFixture{
		svc:      svc,
		identity: provider,
		cart:     cart,
		prices:   prices,
		bookings: bookings,
		notifier: notifier,
	}
}

func twoLineCart() []domain.CartItem {
	return []domain.CartItem{
		{ExperienceID: "exp-1", Quantity: 2},
		{ExperienceID: "exp-2", Quantity: 1},
	}
}

func (f *checkoutFixture) expectTwoLinePrices() {
	f.prices.EXPECT().Ensure(mock.Anything, []string{"exp-1", "exp-2"}).Return(nil).Once()
	f.prices.EXPECT().Price("exp-1").Return(int64(10000), true)
	f.prices.EXPECT().Price("exp-2").Return(int64(5000), true)
}

func TestCheckout_RequiresAuthentication(t *testing.T) {
	f := newCheckoutFixture(t)

	result, err := f.svc.Checkout(context.Background(), "")

	require.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.Nil(t, result)
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)
	f.identity.Login("user-1")

	f.cart.EXPECT().Items().Return(nil).Once()

	result, err := f.svc.Checkout(context.Background(), "")

	require.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Nil(t, result)
}

func TestCheckout_Success(t *testing.T) {
	f := newCheckoutFixture(t)
	f.identity.Login("user-1")

	f.cart.EXPECT().Items().Return(twoLineCart()).Once()
	f.expectTwoLinePrices()

	var created *domain.Booking
	f.bookings.EXPECT().CreateWithItems(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, b *domain.Booking, items []*domain.BookingItem) {
			created = b
			require.Len(t, items, 2)
			assert.Equal(t, int64(10000), items[0].PriceAtBooking)
			assert.Equal(t, 2, items[0].Quantity)
		}).
		Return(nil).Once()
	f.cart.EXPECT().ClearCart(mock.Anything).Return(nil).Once()

	result, err := f.svc.Checkout(context.Background(), "")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, result.BookingID)
	assert.Equal(t, int64(25000), result.TotalAmount)
	assert.False(t, result.AlreadyProcessed)
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, domain.BookingStatusConfirmed, created.Status)
	assert.NotEmpty(t, created.IdempotencyKey)
	assert.Equal(t, CheckoutSucceeded, f.svc.State())
}

func TestCheckout_UnpricedLinesContributeZero(t *testing.T) {
	f := newCheckoutFixture(t)
	f.identity.Login("user-1")

	f.cart.EXPECT().Items().Return(twoLineCart()).Once()
	f.prices.EXPECT().Ensure(mock.Anything, []string{"exp-1", "exp-2"}).
		Return([]string{"exp-2"}).Once()
	f.prices.EXPECT().Price("exp-1").Return(int64(10000), true)
	f.prices.EXPECT().Price("exp-2").Return(int64(0), false)

	f.bookings.EXPECT().CreateWithItems(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	f.cart.EXPECT().ClearCart(mock.Anything).Return(nil).Once()

	result, err := f.svc.Checkout(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, int64(20000), result.TotalAmount)
}

func TestCheckout_RepoFailure_LeavesCartIntact(t *testing.T) {
	f := newCheckoutFixture(t)
	f.identity.Login("user-1")

	f.cart.EXPECT().Items().Return(twoLineCart()).Once()
	f.expectTwoLinePrices()
	f.bookings.EXPECT().CreateWithItems(mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError).Once()

	result, err := f.svc.Checkout(context.Background(), "")

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, CheckoutFailed, f.svc.State())
	// No ClearCart expectation: clearing the cart here would fail the test.
}

func TestCheckout_RejectsConcurrentAttempt(t *testing.T) {
	f := newCheckoutFixture(t)
	f.identity.Login("user-1")

	f.cart.EXPECT().Items().Return(twoLineCart()).Times(2)
	f.expectTwoLinePrices()

	entered := make(chan struct{})
	release := make(chan struct{})
	f.bookings.EXPECT().CreateWithItems(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *domain.Booking, []*domain.BookingItem) error {
			close(entered)
			<-release
			return nil
		}).Once()
	f.cart.EXPECT().ClearCart(mock.Anything).Return(nil).Once()

	firstDone := make(chan error, 1)
	go func() {
		_, err := f.svc.Checkout(context.Background(), "")
		firstDone <- err
	}()

	<-entered
	_, err := f.svc.Checkout(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrCheckoutInProgress)

	close(release)
	require.NoError(t, <-firstDone)
}

func TestCheckout_DuplicateKey_ResolvesToExistingBooking(t *testing.T) {
	f := newCheckoutFixture(t)
	f.identity.Login("user-1")

	f.cart.EXPECT().Items().Return(twoLineCart()).Once()
	f.expectTwoLinePrices()

	f.bookings.EXPECT().CreateWithItems(mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrDuplicateCheckout).Once()
	f.bookings.EXPECT().GetByIdempotencyKey(mock.Anything, "retry-key").
		Return(&domain.Booking{ID: "booking-orig", TotalAmount: 25000}, nil).Once()
	f.cart.EXPECT().ClearCart(mock.Anything).Return(nil).Once()

	result, err := f.svc.Checkout(context.Background(), "retry-key")

	require.NoError(t, err)
	assert.Equal(t, "booking-orig", result.BookingID)
	assert.Equal(t, int64(25000), result.TotalAmount)
	assert.True(t, result.AlreadyProcessed)
	assert.Equal(t, CheckoutSucceeded, f.svc.State())
}

func TestListBookings_RequiresAuthentication(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.ListBookings(context.Background())

	require.ErrorIs(t, err, domain.ErrAuthRequired)
}

func TestListBookings_ReturnsUserHistory(t *testing.T) {
	f := newCheckoutFixture(t)
	f.identity.Login("user-1")

	expected := []*domain.Booking{{ID: "b1", UserID: "user-1"}}
	f.bookings.EXPECT().ListByUser(mock.Anything, "user-1").Return(expected, nil).Once()

	bookings, err := f.svc.ListBookings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, bookings)
}
