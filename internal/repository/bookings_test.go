package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/giftly/giftcart/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newBookingRepo(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewBookingRepo(&dbpg.DB{Master: db}), mock
}

func sampleBooking() (*domain.Booking, []*domain.BookingItem) {
	now := time.Now().UTC()
	b := &domain.Booking{
		ID:             "booking-1",
		UserID:         "user-1",
		TotalAmount:    25000,
		Status:         domain.BookingStatusConfirmed,
		PaymentMethod:  "card_on_file",
		IdempotencyKey: "key-1",
		BookingDate:    now,
		CreatedAt:      now,
	}
	items := []*domain.BookingItem{
		{ID: "item-1", BookingID: b.ID, ExperienceID: "exp-1", Quantity: 2, PriceAtBooking: 10000},
		{ID: "item-2", BookingID: b.ID, ExperienceID: "exp-2", Quantity: 1, PriceAtBooking: 5000},
	}
	return b, items
}

func TestBookingRepository_CreateWithItems_CommitsBoth(t *testing.T) {
	repo, mock := newBookingRepo(t)
	b, items := sampleBooking()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(b.ID, b.UserID, b.TotalAmount, b.Status, b.PaymentMethod,
			b.Notes, b.IdempotencyKey, b.BookingDate, b.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO booking_items").
		WithArgs(b.ID, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateWithItems(context.Background(), b, items))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CreateWithItems_DuplicateKey(t *testing.T) {
	repo, mock := newBookingRepo(t)
	b, items := sampleBooking()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CreateWithItems(context.Background(), b, items)

	require.ErrorIs(t, err, domain.ErrDuplicateCheckout)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CreateWithItems_ItemFailureRollsBack(t *testing.T) {
	repo, mock := newBookingRepo(t)
	b, items := sampleBooking()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO booking_items").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.CreateWithItems(context.Background(), b, items)

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByIdempotencyKey_Found(t *testing.T) {
	repo, mock := newBookingRepo(t)
	b, _ := sampleBooking()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "total_amount", "status", "payment_method",
		"notes", "idempotency_key", "booking_date", "created_at",
	}).AddRow(b.ID, b.UserID, b.TotalAmount, b.Status, b.PaymentMethod,
		b.Notes, b.IdempotencyKey, b.BookingDate, b.CreatedAt)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("key-1").
		WillReturnRows(rows)

	got, err := repo.GetByIdempotencyKey(context.Background(), "key-1")

	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, b.TotalAmount, got.TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByIdempotencyKey_NotFound(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "total_amount", "status", "payment_method",
			"notes", "idempotency_key", "booking_date", "created_at",
		}))

	_, err := repo.GetByIdempotencyKey(context.Background(), "missing")

	require.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_ListByUser(t *testing.T) {
	repo, mock := newBookingRepo(t)
	b, _ := sampleBooking()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "total_amount", "status", "payment_method",
		"notes", "idempotency_key", "booking_date", "created_at",
	}).
		AddRow("booking-2", b.UserID, int64(5000), b.Status, b.PaymentMethod, "", "key-2", b.BookingDate, b.CreatedAt).
		AddRow(b.ID, b.UserID, b.TotalAmount, b.Status, b.PaymentMethod, "", b.IdempotencyKey, b.BookingDate, b.CreatedAt)

	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs("user-1").
		WillReturnRows(rows)

	bookings, err := repo.ListByUser(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "booking-2", bookings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
