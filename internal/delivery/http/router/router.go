// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ExpenseHandler *handler.ExpenseHandler
	IncomeHandler  *handler.IncomeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	expenseHandler *handler.ExpenseHandler
	incomeHandler  *handler.IncomeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		expenseHandler: params.ExpenseHandler,
		incomeHandler:  params.IncomeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Expense routes require authentication
	expenseGroup := e.Group("/expenses")
	expenseGroup.Use(r.authMiddleware.Authenticate)
	{
		// The static route must be registered alongside the :id routes;
		// echo resolves /expenses/categories before /expenses/:id.
		expenseGroup.GET("/categories", r.expenseHandler.Categories)
		expenseGroup.GET("", r.expenseHandler.List)
		expenseGroup.POST("", r.expenseHandler.Create)
		expenseGroup.PUT("/:id", r.expenseHandler.Update)
		expenseGroup.DELETE("/:id", r.expenseHandler.Delete)
	}

	// Income routes require authentication
	incomeGroup := e.Group("/incomes")
	incomeGroup.Use(r.authMiddleware.Authenticate)
	{
		incomeGroup.GET("", r.incomeHandler.List)
		incomeGroup.POST("", r.incomeHandler.Create)
		incomeGroup.PUT("/:id", r.incomeHandler.Update)
		incomeGroup.DELETE("/:id", r.incomeHandler.Delete)
	}
}
