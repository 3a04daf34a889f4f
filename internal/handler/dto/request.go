package dto

type CreateExperienceRequest struct {
	Title    string `json:"title" binding:"required"`
	Price    int64  `json:"price" binding:"required,gt=0"`
	ImageURL string `json:"image_url"`
	Location string `json:"location"`
	Duration string `json:"duration"`
}

type AddCartItemRequest struct {
	ExperienceID string `json:"experience_id" binding:"required,uuid"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type LoginRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type CheckoutRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
}
