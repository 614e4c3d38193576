// Package router contains routing setup for the development server.
package router

import (
	"propmart/internal/devserver/middleware"
	"propmart/internal/devserver/router/handler"
	"propmart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	PropertyHandler  *handler.PropertyHandler
	UserHandler      *handler.UserHandler
	InquiryHandler   *handler.InquiryHandler
	WishlistHandler  *handler.WishlistHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	// Listing routes; browsing is public, mutations require a session
	propertyGroup := e.Group("/properties")
	{
		propertyGroup.GET("", r.params.PropertyHandler.List)
		propertyGroup.GET("/my-properties", r.params.PropertyHandler.ListMine, auth.Authenticate)
		propertyGroup.GET("/:id", r.params.PropertyHandler.GetByID)
		propertyGroup.POST("", r.params.PropertyHandler.Create, auth.Authenticate)
		propertyGroup.PUT("/:id", r.params.PropertyHandler.Update, auth.Authenticate)
		propertyGroup.DELETE("/:id", r.params.PropertyHandler.Delete, auth.Authenticate)
		propertyGroup.PUT("/:id/approve", r.params.PropertyHandler.Approve,
			auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
	}

	// Account routes
	userGroup := e.Group("/users")
	{
		userGroup.GET("", r.params.UserHandler.List,
			auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
		userGroup.GET("/brokers", r.params.UserHandler.ListBrokers)
		userGroup.PUT("/:id", r.params.UserHandler.Update, auth.Authenticate)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete, auth.Authenticate)
	}

	// Lead routes
	inquiryGroup := e.Group("/inquiries", auth.Authenticate)
	{
		inquiryGroup.POST("", r.params.InquiryHandler.Create)
		inquiryGroup.GET("/sent", r.params.InquiryHandler.ListSent)
		inquiryGroup.GET("/received", r.params.InquiryHandler.ListReceived)
		inquiryGroup.PUT("/:id/status", r.params.InquiryHandler.SetStatus)
		inquiryGroup.DELETE("/:id", r.params.InquiryHandler.Delete)
	}

	// Wishlist routes
	wishlistGroup := e.Group("/wishlist", auth.Authenticate)
	{
		wishlistGroup.GET("", r.params.WishlistHandler.List)
		wishlistGroup.POST("", r.params.WishlistHandler.Add)
		wishlistGroup.DELETE("/:propertyId", r.params.WishlistHandler.Remove)
	}

	// Admin dashboard
	e.GET("/dashboard/stats", r.params.DashboardHandler.Stats,
		auth.Authenticate, auth.RequireRole(entity.RoleAdmin))
}
