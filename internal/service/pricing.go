package service

import (
	"github.com/giftly/giftcart/internal/domain"
)

// Summarize derives the cart totals from the current lines and the cached
// experience records. Pure: no state, no I/O. Lines whose experience is not
// cached contribute zero to the total and are reported in Unpriced.
func Summarize(items []domain.CartItem, experiences map[string]domain.Experience) domain.CartSummary {
	var s domain.CartSummary
	for _, item := range items {
		s.ItemCount += item.Quantity
		exp, ok := experiences[item.ExperienceID]
		if !ok {
			s.Unpriced = append(s.Unpriced, item.ExperienceID)
			continue
		}
		s.TotalAmount += exp.Price * int64(item.Quantity)
	}
	return s
}
