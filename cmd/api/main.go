package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codeAKstan/NexaVault-sub000/api/routes"
	"github.com/codeAKstan/NexaVault-sub000/internal/config"
	"github.com/codeAKstan/NexaVault-sub000/internal/handlers"
	"github.com/codeAKstan/NexaVault-sub000/internal/repositories"
	mongorepo "github.com/codeAKstan/NexaVault-sub000/internal/repositories/mongodb"
	"github.com/codeAKstan/NexaVault-sub000/internal/services"
	"github.com/codeAKstan/NexaVault-sub000/pkg/mongodb"
	"github.com/joho/godotenv"
)

func main() {
	// Environment variables from .env take effect before viper reads them
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)
	var adminRepo repositories.AdminRepository = mongorepo.NewAdminRepository(db)
	var planRepo repositories.PlanRepository = mongorepo.NewPlanRepository(db)
	var investmentRepo repositories.InvestmentRepository = mongorepo.NewInvestmentRepository(db)
	var transactionRepo repositories.TransactionRepository = mongorepo.NewTransactionRepository(db)
	var methodRepo repositories.PaymentMethodRepository = mongorepo.NewPaymentMethodRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, adminRepo, cfg)
	userService := services.NewUserService(userRepo)
	planService := services.NewPlanService(planRepo)
	investmentService := services.NewInvestmentService(investmentRepo, planRepo, userRepo, transactionRepo)
	transactionService := services.NewTransactionService(transactionRepo, userRepo)
	methodService := services.NewPaymentMethodService(methodRepo)
	accrualService := services.NewAccrualService(investmentRepo, planRepo, userRepo, transactionRepo)

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:          handlers.NewAuthHandler(authService, cfg),
		UserHandler:          handlers.NewUserHandler(userService),
		PlanHandler:          handlers.NewPlanHandler(planService),
		InvestmentHandler:    handlers.NewInvestmentHandler(investmentService),
		TransactionHandler:   handlers.NewTransactionHandler(transactionService),
		PaymentMethodHandler: handlers.NewPaymentMethodHandler(methodService),
		AccrualHandler:       handlers.NewAccrualHandler(accrualService),
	}

	router := routes.SetupRouter(cfg, deps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
