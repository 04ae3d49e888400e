package main

import (
	"log"

	api "accounts-backend/cmd/api"
	accountdomain "accounts-backend/internal/account/domain"
	accountRepo "accounts-backend/internal/account/repository"
	accountUsecase "accounts-backend/internal/account/usecase"
	"accounts-backend/pkg/config"
	"accounts-backend/pkg/database"
	"accounts-backend/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&accountdomain.User{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize dependencies (dependency injection)
	userRepo := accountRepo.NewUserRepository(db)
	tokenService := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	accountUsecaseInstance := accountUsecase.NewAccountUsecase(userRepo, tokenService, cfg)

	// Initialize HTTP handler
	handler := api.NewHandler(accountUsecaseInstance, tokenService, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
