package usecase

import (
	"errors"

	"accounts-backend/internal/account/dto"
)

// Business-rule failures surfaced to the delivery layer. Anything else
// coming out of the usecase is an infrastructure error and must not reach
// the client verbatim.
var (
	ErrEmailInUse          = errors.New("email already in use")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrInvalidPassword     = errors.New("invalid password for this email")
	ErrUserNotFound        = errors.New("user not found")
	ErrOldPasswordMismatch = errors.New("old password does not match")
)

// AccountUsecase defines the interface for account business logic
type AccountUsecase interface {
	// Register creates a new account and returns a session token
	Register(req *dto.RegisterRequest) (string, error)

	// Login verifies credentials and returns a session token
	Login(req *dto.LoginRequest) (string, error)

	// ChangePassword verifies the old password and replaces the stored
	// hash, returning a fresh session token
	ChangePassword(userID string, req *dto.ChangePasswordRequest) (string, error)

	// GetProfile returns the acting user's profile and a fresh token
	GetProfile(userID string) (*dto.Profile, string, error)

	// UpdateProfile rewrites the profile fields and returns a fresh token
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (string, error)

	// DeleteAccount removes the account (hard delete, no token reissue)
	DeleteAccount(userID string) error
}
