package domain

import "errors"

var (
	ErrExperienceNotFound = errors.New("experience not found")
	ErrBookingNotFound    = errors.New("booking not found")
)

var (
	ErrAuthRequired       = errors.New("authentication required")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrDuplicateCheckout  = errors.New("checkout intent already processed")
)

var (
	ErrValidation = errors.New("validation error")
)
