// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/router/handler"
	"market/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	DiscountHandler *handler.DiscountHandler
	CommentHandler  *handler.CommentHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	discountHandler *handler.DiscountHandler
	commentHandler  *handler.CommentHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		discountHandler: params.DiscountHandler,
		commentHandler:  params.CommentHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog read routes
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/categories", r.categoryHandler.ListCategories)
		catalogGroup.GET("/categories/search", r.categoryHandler.SearchCategories)
		catalogGroup.GET("/categories/:id", r.categoryHandler.GetCategory)
		catalogGroup.GET("/products", r.productHandler.ListProducts)
		catalogGroup.GET("/products/search", r.productHandler.SearchProducts)
		catalogGroup.GET("/products/:id", r.productHandler.GetProduct)
		catalogGroup.GET("/products/:id/comments", r.commentHandler.ListComments)
		catalogGroup.GET("/discounts", r.discountHandler.ListDiscounts)
		catalogGroup.GET("/discounts/search", r.discountHandler.SearchDiscounts)
		catalogGroup.GET("/discounts/promocodes/:code", r.discountHandler.GetPromoCode)
		catalogGroup.GET("/discounts/:id", r.discountHandler.GetDiscount)
	}

	// Catalog management routes that require the admin role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminGroup.POST("/categories", r.categoryHandler.RegisterCategory)
		adminGroup.POST("/products", r.productHandler.RegisterProduct)
		adminGroup.PATCH("/products/:id", r.productHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)
		adminGroup.PUT("/products/:id/quantity", r.productHandler.SetQuantity)
		adminGroup.POST("/products/:id/images", r.productHandler.AddImage)
		adminGroup.DELETE("/products/:id/images", r.productHandler.RemoveImage)
		adminGroup.POST("/discounts/products", r.discountHandler.RegisterProductDiscount)
		adminGroup.POST("/discounts/categories", r.discountHandler.RegisterCategoryDiscount)
		adminGroup.POST("/discounts/promocodes", r.discountHandler.RegisterPromoCode)
		adminGroup.DELETE("/discounts/:id", r.discountHandler.DeleteDiscount)
		adminGroup.PUT("/orders/:id/status", r.orderHandler.ChangeStatus)
	}

	// Customer routes that require authentication
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.POST("/comments", r.commentHandler.RegisterComment)
		meGroup.GET("/comments", r.commentHandler.ListMyComments)
		meGroup.DELETE("/comments/:id", r.commentHandler.DeleteComment)
		meGroup.GET("/cart", r.cartHandler.GetCart)
		meGroup.POST("/cart/items", r.cartHandler.AddItem)
		meGroup.DELETE("/cart/items/:productId", r.cartHandler.RemoveItem)
		meGroup.POST("/cart/checkout", r.cartHandler.Checkout)
		meGroup.GET("/orders", r.orderHandler.ListOrders)
		meGroup.GET("/orders/:id", r.orderHandler.GetOrder)
		meGroup.POST("/orders/:id/cancel", r.orderHandler.CancelOrder)
	}
}
