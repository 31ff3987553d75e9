// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"plantstore/internal/delivery/http/middleware"
	"plantstore/internal/delivery/http/router/handler"
	"plantstore/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	PlantHandler    *handler.PlantHandler
	CartHandler     *handler.CartHandler
	FeedbackHandler *handler.FeedbackHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	plantHandler    *handler.PlantHandler
	cartHandler     *handler.CartHandler
	feedbackHandler *handler.FeedbackHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		plantHandler:    params.PlantHandler,
		cartHandler:     params.CartHandler,
		feedbackHandler: params.FeedbackHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.Signup)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/refresh", r.accountHandler.RefreshToken)
		authGroup.POST("/logout", r.accountHandler.Logout)
	}

	// Catalog routes: reads are public, writes require the staff role.
	e.GET("/plants", r.plantHandler.ListPlants)
	e.GET("/plants/:id", r.plantHandler.GetPlant)
	staffGroup := e.Group("/plants")
	staffGroup.Use(r.authMiddleware.Authenticate)
	staffGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleStaff)))
	{
		staffGroup.POST("", r.plantHandler.CreatePlant)
		staffGroup.PUT("/:id", r.plantHandler.UpdatePlant)
	}

	// Cart routes, all bound to the authenticated user's own cart.
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.ListItems)
		cartGroup.POST("/add/item", r.cartHandler.AddItem)
		cartGroup.DELETE("/remove/item/:id", r.cartHandler.RemoveItem)
		cartGroup.PATCH("/item/increase-quantity/:id", r.cartHandler.IncreaseQuantity)
		cartGroup.PATCH("/item/decrease-quantity/:id", r.cartHandler.DecreaseQuantity)
	}

	// Feedback routes: listing is public but annotates an authenticated viewer.
	e.GET("/feedback", r.feedbackHandler.ListFeedback, r.authMiddleware.OptionalAuthenticate)
	feedbackGroup := e.Group("/feedback")
	feedbackGroup.Use(r.authMiddleware.Authenticate)
	{
		feedbackGroup.POST("/create", r.feedbackHandler.CreateFeedback)
		feedbackGroup.DELETE("/delete/:id", r.feedbackHandler.DeleteFeedback)
	}

	// Admin routes for account management.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleStaff)))
	{
		adminGroup.POST("/users", r.accountHandler.CreateUser)
	}
}
