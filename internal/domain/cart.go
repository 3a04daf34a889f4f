package domain

// CartItem is one cart line: a quantity of a single experience.
// A cart holds at most one line per experience id; quantity is always >= 1.
type CartItem struct {
	ExperienceID string `json:"experience_id"`
	Quantity     int    `json:"quantity"`
}

// CartSummary is the derived view of a cart: total item count, total price
// over lines whose experience is cached, and the ids of lines that could not
// be priced (experience missing from the cache).
type CartSummary struct {
	ItemCount   int      `json:"item_count"`
	TotalAmount int64    `json:"total_amount"`
	Unpriced    []string `json:"unpriced,omitempty"`
}
