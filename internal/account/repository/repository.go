package repository

import (
	"accounts-backend/internal/account/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user, assigning its ID
	Create(user *domain.User) error

	// FindByEmail finds a user by email, nil if absent
	FindByEmail(email string) (*domain.User, error)

	// FindByID finds a user by ID, nil if absent
	FindByID(id string) (*domain.User, error)

	// UpdateProfile writes name, last name, email and location for the
	// user identified by user.ID; reports whether a row was touched
	UpdateProfile(user *domain.User) (bool, error)

	// UpdatePassword replaces the stored password hash; reports whether a
	// row was touched
	UpdatePassword(id, passwordHash string) (bool, error)

	// Delete removes the user by ID (hard delete)
	Delete(id string) error
}
