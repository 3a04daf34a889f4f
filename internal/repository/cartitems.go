package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/giftly/giftcart/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// CartItemRepository is the authenticated cart backend: one row per
// (user, experience) in cart_items.
type CartItemRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCartItemRepo(db *dbpg.DB) *CartItemRepository {
	return &CartItemRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *CartItemRepository) Load(ctx context.Context, userID string) ([]domain.CartItem, error) {
	query := `SELECT experience_id, quantity
			  FROM cart_items
			  WHERE user_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	defer rows.Close()

	var res []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err = rows.Scan(&item.ExperienceID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		res = append(res, item)
	}

	return res, rows.Err()
}

// AddItem increments the line inside the store, so concurrent adds for the
// same experience serialize on the row rather than racing a read-modify-write.
func (r *CartItemRepository) AddItem(ctx context.Context, userID, experienceID string) (int, error) {
	query := `INSERT INTO cart_items (user_id, experience_id, quantity, created_at, updated_at)
			  VALUES ($1, $2, 1, now(), now())
			  ON CONFLICT (user_id, experience_id)
			  DO UPDATE SET quantity = cart_items.quantity + 1, updated_at = now()
			  RETURNING quantity`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID, experienceID)
	if err != nil {
		return 0, fmt.Errorf("upsert cart item: %w", err)
	}

	var qty int
	if err = row.Scan(&qty); err != nil {
		return 0, fmt.Errorf("scan cart quantity: %w", err)
	}

	return qty, nil
}

func (r *CartItemRepository) SetQuantity(ctx context.Context, userID, experienceID string, quantity int) error {
	query := `INSERT INTO cart_items (user_id, experience_id, quantity, created_at, updated_at)
			  VALUES ($1, $2, $3, now(), now())
			  ON CONFLICT (user_id, experience_id)
			  DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID, experienceID, quantity); err != nil {
		return fmt.Errorf("set cart quantity: %w", err)
	}

	return nil
}

func (r *CartItemRepository) RemoveItem(ctx context.Context, userID, experienceID string) error {
	query := `DELETE FROM cart_items WHERE user_id = $1 AND experience_id = $2`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID, experienceID); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}

	return nil
}

func (r *CartItemRepository) Clear(ctx context.Context, userID string) error {
	query := `DELETE FROM cart_items WHERE user_id = $1`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
