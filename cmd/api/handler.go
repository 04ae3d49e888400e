package api

import (
	accountUsecase "accounts-backend/internal/account/usecase"
	"accounts-backend/pkg/config"
	"accounts-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	accountUsecase accountUsecase.AccountUsecase
	tokenService   *token.Service
	config         *config.Config
}

func NewHandler(accountUc accountUsecase.AccountUsecase, tokenService *token.Service, cfg *config.Config) *Handler {
	return &Handler{
		accountUsecase: accountUc,
		tokenService:   tokenService,
		config:         cfg,
	}
}

// Engine builds the gin engine with middleware and routes attached.
func (h *Handler) Engine() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.accountUsecase, h.tokenService)

	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
