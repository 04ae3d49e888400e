package api

import (
	"net/http"

	"accounts-backend/internal/account/delivery"
	accountUsecase "accounts-backend/internal/account/usecase"
	"accounts-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, accountUc accountUsecase.AccountUsecase, tokenService *token.Service) {
	accountHandler := delivery.NewAccountHandler(accountUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Anonymous routes
	r.POST("/register", accountHandler.Register)
	r.POST("/login", accountHandler.Login)

	// Authenticated routes
	auth := r.Group("/")
	auth.Use(delivery.AuthMiddleware(tokenService))
	{
		auth.PATCH("/password", accountHandler.ChangePassword)
		auth.GET("/user", accountHandler.GetProfile)
		auth.PATCH("/user", accountHandler.UpdateProfile)
		auth.DELETE("/user", accountHandler.DeleteProfile)
	}
}
