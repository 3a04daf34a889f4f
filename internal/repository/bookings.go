package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giftly/giftcart/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateWithItems inserts the booking and its items in one transaction.
// Either both land or neither does: a failed item insert can never leave an
// orphaned booking behind. The items go in as a single batched statement.
func (r *BookingRepository) CreateWithItems(ctx context.Context, b *domain.Booking, items []*domain.BookingItem) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	bookingQuery := `INSERT INTO bookings (id, user_id, total_amount, status, payment_method, notes, idempotency_key, booking_date, created_at)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = tx.ExecContext(
		ctx, bookingQuery,
		b.ID, b.UserID, b.TotalAmount, b.Status, b.PaymentMethod,
		b.Notes, b.IdempotencyKey, b.BookingDate, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateCheckout
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	if len(items) > 0 {
		ids := make([]string, len(items))
		expIDs := make([]string, len(items))
		quantities := make([]int64, len(items))
		prices := make([]int64, len(items))
		for i, item := range items {
			ids[i] = item.ID
			expIDs[i] = item.ExperienceID
			quantities[i] = int64(item.Quantity)
			prices[i] = item.PriceAtBooking
		}

		itemsQuery := `INSERT INTO booking_items (id, booking_id, experience_id, quantity, price_at_booking)
					   SELECT unnest($2::uuid[]), $1, unnest($3::uuid[]), unnest($4::bigint[]), unnest($5::bigint[])`
		_, err = tx.ExecContext(
			ctx, itemsQuery,
			b.ID, pq.Array(ids), pq.Array(expIDs), pq.Array(quantities), pq.Array(prices),
		)
		if err != nil {
			return fmt.Errorf("insert booking items: %w", err)
		}
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	query := `SELECT id, user_id, total_amount, status, payment_method, notes, idempotency_key, booking_date, created_at
			  FROM bookings
			  WHERE idempotency_key = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, key)
	if err != nil {
		return nil, fmt.Errorf("get booking by key: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.ID, &b.UserID, &b.TotalAmount, &b.Status, &b.PaymentMethod,
		&b.Notes, &b.IdempotencyKey, &b.BookingDate, &b.CreatedAt,
	); err != nil {
		if isNoRows(err) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT id, user_id, total_amount, status, payment_method, notes, idempotency_key, booking_date, created_at
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.UserID, &b.TotalAmount, &b.Status, &b.PaymentMethod,
			&b.Notes, &b.IdempotencyKey, &b.BookingDate, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
