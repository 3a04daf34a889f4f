package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusRefunded  BookingStatus = "refunded"
)

// Booking is a persisted order record, created exactly once per successful
// checkout and immutable afterward from this subsystem's point of view.
type Booking struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	TotalAmount    int64         `json:"total_amount"`
	Status         BookingStatus `json:"status"`
	PaymentMethod  string        `json:"payment_method"`
	Notes          string        `json:"notes"`
	IdempotencyKey string        `json:"-"`
	BookingDate    time.Time     `json:"booking_date"`
	CreatedAt      time.Time     `json:"created_at"`
}

// BookingItem is one line of a booking. PriceAtBooking snapshots the
// experience price at checkout time, decoupled from later catalog changes.
type BookingItem struct {
	ID             string `json:"id"`
	BookingID      string `json:"booking_id"`
	ExperienceID   string `json:"experience_id"`
	Quantity       int    `json:"quantity"`
	PriceAtBooking int64  `json:"price_at_booking"`
}

// CheckoutResult is returned to the caller after a successful checkout.
// AlreadyProcessed is set when the idempotency key matched an earlier
// checkout and no new booking was created.
type CheckoutResult struct {
	BookingID        string `json:"booking_id"`
	TotalAmount      int64  `json:"total_amount"`
	AlreadyProcessed bool   `json:"already_processed,omitempty"`
}
