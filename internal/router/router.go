package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateExperience(c *ginext.Context)
	GetExperience(c *ginext.Context)
	ListExperiences(c *ginext.Context)
	GetCart(c *ginext.Context)
	AddCartItem(c *ginext.Context)
	UpdateCartItem(c *ginext.Context)
	RemoveCartItem(c *ginext.Context)
	ClearCart(c *ginext.Context)
	Checkout(c *ginext.Context)
	ListBookings(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	GetSession(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.POST("/experiences", h.CreateExperience)
		api.GET("/experiences", h.ListExperiences)
		api.GET("/experiences/:id", h.GetExperience)

		// Cart
		api.GET("/cart", h.GetCart)
		api.POST("/cart/items", h.AddCartItem)
		api.PUT("/cart/items/:id", h.UpdateCartItem)
		api.DELETE("/cart/items/:id", h.RemoveCartItem)
		api.DELETE("/cart", h.ClearCart)

		// Checkout
		api.POST("/checkout", h.Checkout)
		api.GET("/bookings", h.ListBookings)

		// Session
		api.POST("/session/login", h.Login)
		api.POST("/session/logout", h.Logout)
		api.GET("/session", h.GetSession)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
