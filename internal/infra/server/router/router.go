// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/entrypoint/controller"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	incomeController    *controller.IncomeController
	expenseController   *controller.ExpenseController
	savingController    *controller.SavingController
	goalController      *controller.GoalController
	dashboardController *controller.DashboardController
	reportController    *controller.ReportController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	incomeController *controller.IncomeController,
	expenseController *controller.ExpenseController,
	savingController *controller.SavingController,
	goalController *controller.GoalController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		incomeController:    incomeController,
		expenseController:   expenseController,
		savingController:    savingController,
		goalController:      goalController,
		dashboardController: dashboardController,
		reportController:    reportController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Income record routes (require authentication)
		if r.incomeController != nil && r.authMiddleware != nil {
			income := v1.Group("/income")
			income.Use(r.authMiddleware.Authenticate())
			{
				income.GET("", r.incomeController.List)
				income.POST("", r.incomeController.Create)
				income.DELETE("", r.incomeController.Delete)
			}
		}

		// Expense record routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.DELETE("", r.expenseController.Delete)
			}
		}

		// Saving record routes (require authentication)
		if r.savingController != nil && r.authMiddleware != nil {
			savings := v1.Group("/savings")
			savings.Use(r.authMiddleware.Authenticate())
			{
				savings.GET("", r.savingController.List)
				savings.POST("", r.savingController.Create)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.Get)
				goals.PUT("", r.goalController.Set)
				goals.GET("/evaluation", r.goalController.Evaluate)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/totals", r.dashboardController.Totals)
				dashboard.GET("/monthly", r.dashboardController.Monthly)
				dashboard.GET("/yearly", r.dashboardController.Yearly)
				dashboard.GET("/breakdown", r.dashboardController.Breakdown)
				dashboard.GET("/series", r.dashboardController.Series)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/monthly", r.reportController.Monthly)
				reports.POST("/monthly/export", r.reportController.Export)
				reports.POST("/monthly/email", r.reportController.Email)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
