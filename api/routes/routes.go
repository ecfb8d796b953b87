package routes

import (
	"github.com/codeAKstan/NexaVault-sub000/internal/config"
	"github.com/codeAKstan/NexaVault-sub000/internal/handlers"
	"github.com/codeAKstan/NexaVault-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies carries the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler          *handlers.AuthHandler
	UserHandler          *handlers.UserHandler
	PlanHandler          *handlers.PlanHandler
	InvestmentHandler    *handlers.InvestmentHandler
	TransactionHandler   *handlers.TransactionHandler
	PaymentMethodHandler *handlers.PaymentMethodHandler
	AccrualHandler       *handlers.AccrualHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/admin/login", deps.AuthHandler.AdminLogin)
			auth.POST("/logout", deps.AuthHandler.Logout)
		}

		public.GET("/plans", deps.PlanHandler.GetAllPlans)
		public.GET("/plans/:id", deps.PlanHandler.GetPlanByID)
		public.GET("/payment-methods", deps.PaymentMethodHandler.GetEnabledMethods)
	}

	// Cron trigger, guarded by the scheduler's shared secret
	cron := router.Group("/api/v1/cron")
	cron.Use(middleware.CronAuthMiddleware(cfg))
	{
		cron.GET("/accrue", deps.AccrualHandler.RunSweep)
	}

	// User routes
	user := router.Group("/api/v1")
	user.Use(middleware.UserAuthMiddleware(cfg))
	{
		profile := user.Group("/profile")
		{
			profile.GET("", deps.UserHandler.GetProfile)
			profile.PUT("", deps.UserHandler.UpdateProfile)
			profile.POST("/kyc", deps.UserHandler.SubmitKYC)
		}

		investments := user.Group("/investments")
		{
			investments.GET("", deps.InvestmentHandler.GetMyInvestments)
			investments.POST("", deps.InvestmentHandler.Purchase)
		}

		transactions := user.Group("/transactions")
		{
			transactions.GET("", deps.TransactionHandler.GetMyTransactions)
			transactions.POST("/deposit", deps.TransactionHandler.RequestDeposit)
			transactions.POST("/withdraw", deps.TransactionHandler.RequestWithdrawal)
		}
	}

	// Admin routes
	admin := router.Group("/api/v1/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg))
	{
		users := admin.Group("/users")
		{
			users.GET("", deps.UserHandler.GetAllUsers)
			users.GET("/count", deps.UserHandler.GetUserCount)
			users.GET("/:id", deps.UserHandler.GetUserByID)
			users.POST("/:id/adjust", deps.UserHandler.AdjustBalance)
			users.POST("/:id/kyc", deps.UserHandler.ReviewKYC)
			users.POST("/:id/suspend", deps.UserHandler.SetSuspended)
		}

		plans := admin.Group("/plans")
		{
			plans.POST("", deps.PlanHandler.CreatePlan)
			plans.PUT("/:id", deps.PlanHandler.UpdatePlan)
			plans.DELETE("/:id", deps.PlanHandler.DeletePlan)
		}

		investments := admin.Group("/investments")
		{
			investments.GET("", deps.InvestmentHandler.GetAllInvestments)
			investments.GET("/count", deps.InvestmentHandler.GetInvestmentCount)
			investments.POST("/:id/cancel", deps.InvestmentHandler.CancelInvestment)
		}

		transactions := admin.Group("/transactions")
		{
			transactions.GET("/count", deps.TransactionHandler.GetTransactionCount)
			transactions.GET("/status/:status", deps.TransactionHandler.GetTransactionsByStatus)
			transactions.POST("/:id/approve", deps.TransactionHandler.Approve)
			transactions.POST("/:id/decline", deps.TransactionHandler.Decline)
		}

		methods := admin.Group("/payment-methods")
		{
			methods.GET("", deps.PaymentMethodHandler.GetAllMethods)
			methods.POST("", deps.PaymentMethodHandler.CreateMethod)
			methods.PUT("/:id", deps.PaymentMethodHandler.UpdateMethod)
			methods.DELETE("/:id", deps.PaymentMethodHandler.DeleteMethod)
		}
	}

	return router
}
