package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/giftly/giftcart/internal/domain"
	"github.com/giftly/giftcart/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type CartSvc interface {
	Items() []domain.CartItem
	Summary() domain.CartSummary
	CachedExperiences() map[string]domain.Experience
	AddToCart(ctx context.Context, experienceID string) error
	RemoveFromCart(ctx context.Context, experienceID string) error
	UpdateQuantity(ctx context.Context, experienceID string, quantity int) error
	ClearCart(ctx context.Context) error
}

type CheckoutSvc interface {
	Checkout(ctx context.Context, idempotencyKey string) (*domain.CheckoutResult, error)
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
}

type CatalogSvc interface {
	Create(ctx context.Context, input domain.CreateExperienceInput) (*domain.Experience, error)
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context) ([]*domain.Experience, error)
}

type SessionSvc interface {
	Current() domain.Identity
	Login(userID string)
	Logout()
}

type Handler struct {
	cartService     CartSvc
	checkoutService CheckoutSvc
	catalogService  CatalogSvc
	sessionService  SessionSvc
}

func NewHandler(cartService CartSvc, checkoutService CheckoutSvc, catalogService CatalogSvc, sessionService SessionSvc) *Handler {
	return &Handler{
		cartService:     cartService,
		checkoutService: checkoutService,
		catalogService:  catalogService,
		sessionService:  sessionService,
	}
}

// Experiences

func (h *Handler) CreateExperience(c *ginext.Context) {
	var req dto.CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateExperienceInput{
		Title:    req.Title,
		Price:    req.Price,
		ImageURL: req.ImageURL,
		Location: req.Location,
		Duration: req.Duration,
	}

	exp, err := h.catalogService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExperienceResponse(exp))
}

func (h *Handler) GetExperience(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid experience id"})
		return
	}

	exp, err := h.catalogService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToExperienceResponse(exp))
}

func (h *Handler) ListExperiences(c *ginext.Context) {
	experiences, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ExperienceResponse, 0, len(experiences))
	for _, e := range experiences {
		resp = append(resp, dto.ToExperienceResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Cart

func (h *Handler) GetCart(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.ToCartResponse(
		h.cartService.Items(),
		h.cartService.Summary(),
		h.cartService.CachedExperiences(),
	))
}

func (h *Handler) AddCartItem(c *ginext.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.cartService.AddToCart(c.Request.Context(), req.ExperienceID); err != nil {
		h.handleError(c, err)
		return
	}

	h.GetCart(c)
}

func (h *Handler) UpdateCartItem(c *ginext.Context) {
	experienceID := c.Param("id")
	if _, err := uuid.Parse(experienceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid experience id"})
		return
	}

	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.cartService.UpdateQuantity(c.Request.Context(), experienceID, req.Quantity); err != nil {
		h.handleError(c, err)
		return
	}

	h.GetCart(c)
}

func (h *Handler) RemoveCartItem(c *ginext.Context) {
	experienceID := c.Param("id")
	if _, err := uuid.Parse(experienceID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid experience id"})
		return
	}

	if err := h.cartService.RemoveFromCart(c.Request.Context(), experienceID); err != nil {
		h.handleError(c, err)
		return
	}

	h.GetCart(c)
}

func (h *Handler) ClearCart(c *ginext.Context) {
	if err := h.cartService.ClearCart(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cleared"})
}

// Checkout

func (h *Handler) Checkout(c *ginext.Context) {
	var req dto.CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
	}

	result, err := h.checkoutService.Checkout(c.Request.Context(), req.IdempotencyKey)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Success:          true,
		BookingID:        result.BookingID,
		TotalAmount:      result.TotalAmount,
		AlreadyProcessed: result.AlreadyProcessed,
	})
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.checkoutService.ListBookings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Session

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.sessionService.Login(req.UserID)
	h.GetSession(c)
}

func (h *Handler) Logout(c *ginext.Context) {
	h.sessionService.Logout()
	h.GetSession(c)
}

func (h *Handler) GetSession(c *ginext.Context) {
	ident := h.sessionService.Current()
	c.JSON(http.StatusOK, dto.SessionResponse{
		UserID:        ident.UserID,
		Authenticated: ident.Authenticated(),
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrExperienceNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCheckoutInProgress):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
