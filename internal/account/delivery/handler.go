package delivery

import (
	"errors"
	"log"
	"net/http"

	"accounts-backend/internal/account/dto"
	"accounts-backend/internal/account/usecase"
	"accounts-backend/pkg/validator"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountUsecase usecase.AccountUsecase
}

func NewAccountHandler(accountUsecase usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{
		accountUsecase: accountUsecase,
	}
}

// internalError answers with a generic 500; the cause stays in the server log.
func internalError(c *gin.Context, err error) {
	log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and password are required"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and password are required"})
		return
	}

	if !validator.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	if !validator.IsValidPassword(req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password format"})
		return
	}

	tok, err := h.accountUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use!"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TokenResponse{
		Message: "User created successfully!",
		Token:   tok,
	})
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	if !validator.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	tok, err := h.accountUsecase.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEmail):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email!"})
		case errors.Is(err, usecase.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password for this email!"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Message: "User logged in successfully!",
		Token:   tok,
	})
}

func (h *AccountHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password format"})
		return
	}

	if !validator.IsValidPassword(req.NewPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password format"})
		return
	}

	tok, err := h.accountUsecase.ChangePassword(c.GetString("userID"), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "No user found!"})
		case errors.Is(err, usecase.ErrOldPasswordMismatch):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Old password does not match!"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Message: "Password updated successfully!",
		Token:   tok,
	})
}

func (h *AccountHandler) GetProfile(c *gin.Context) {
	profile, tok, err := h.accountUsecase.GetProfile(c.GetString("userID"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found!"})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		Message: "User fetched successfully!",
		User:    *profile,
		Token:   tok,
	})
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user fields"})
		return
	}

	if !validator.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	if !validator.AreValidUserFields(req.Name, req.LastName, req.Location) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user fields"})
		return
	}

	tok, err := h.accountUsecase.UpdateProfile(c.GetString("userID"), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found!"})
		case errors.Is(err, usecase.ErrEmailInUse):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use!"})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Message: "User updated successfully!",
		Token:   tok,
	})
}

func (h *AccountHandler) DeleteProfile(c *gin.Context) {
	if err := h.accountUsecase.DeleteAccount(c.GetString("userID")); err != nil {
		internalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
