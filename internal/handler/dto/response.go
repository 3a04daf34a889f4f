package dto

import (
	"time"

	"github.com/giftly/giftcart/internal/domain"
)

type ExperienceResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	ImageURL  string `json:"image_url"`
	Location  string `json:"location"`
	Duration  string `json:"duration"`
	CreatedAt string `json:"created_at"`
}

type CartLineResponse struct {
	ExperienceID string              `json:"experience_id"`
	Quantity     int                 `json:"quantity"`
	Experience   *ExperienceResponse `json:"experience,omitempty"`
}

type CartResponse struct {
	Items       []CartLineResponse `json:"items"`
	ItemCount   int                `json:"item_count"`
	TotalAmount int64              `json:"total_amount"`
	Unpriced    []string           `json:"unpriced,omitempty"`
}

type CheckoutResponse struct {
	Success          bool   `json:"success"`
	BookingID        string `json:"booking_id,omitempty"`
	TotalAmount      int64  `json:"total_amount,omitempty"`
	AlreadyProcessed bool   `json:"already_processed,omitempty"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	TotalAmount   int64  `json:"total_amount"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method"`
	BookingDate   string `json:"booking_date"`
}

type SessionResponse struct {
	UserID        string `json:"user_id,omitempty"`
	Authenticated bool   `json:"authenticated"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToExperienceResponse(e *domain.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:        e.ID,
		Title:     e.Title,
		Price:     e.Price,
		ImageURL:  e.ImageURL,
		Location:  e.Location,
		Duration:  e.Duration,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

func ToCartResponse(items []domain.CartItem, summary domain.CartSummary, experiences map[string]domain.Experience) CartResponse {
	lines := make([]CartLineResponse, 0, len(items))
	for _, item := range items {
		line := CartLineResponse{
			ExperienceID: item.ExperienceID,
			Quantity:     item.Quantity,
		}
		if exp, ok := experiences[item.ExperienceID]; ok {
			resp := ToExperienceResponse(&exp)
			line.Experience = &resp
		}
		lines = append(lines, line)
	}

	return CartResponse{
		Items:       lines,
		ItemCount:   summary.ItemCount,
		TotalAmount: summary.TotalAmount,
		Unpriced:    summary.Unpriced,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		TotalAmount:   b.TotalAmount,
		Status:        string(b.Status),
		PaymentMethod: b.PaymentMethod,
		BookingDate:   b.BookingDate.Format(time.RFC3339),
	}
}
