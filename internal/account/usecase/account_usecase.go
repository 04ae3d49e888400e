package usecase

import (
	"errors"
	"strings"

	"accounts-backend/internal/account/domain"
	"accounts-backend/internal/account/dto"
	"accounts-backend/internal/account/repository"
	"accounts-backend/pkg/config"
	"accounts-backend/pkg/token"

	"gorm.io/gorm"
)

// accountUsecase implements AccountUsecase interface
type accountUsecase struct {
	userRepo     repository.UserRepository
	tokenService *token.Service
	config       *config.Config
}

// NewAccountUsecase creates a new instance of accountUsecase
func NewAccountUsecase(userRepo repository.UserRepository, tokenService *token.Service, cfg *config.Config) AccountUsecase {
	return &accountUsecase{
		userRepo:     userRepo,
		tokenService: tokenService,
		config:       cfg,
	}
}

// normalizeEmail lower-cases the address so the unique index on email is
// case-insensitive in effect.
func normalizeEmail(email string) string {
	return strings.ToLower(email)
}

func (u *accountUsecase) Register(req *dto.RegisterRequest) (string, error) {
	email := normalizeEmail(req.Email)

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailInUse
	}

	hashedPassword, err := repository.HashPassword(req.Password, u.config.BcryptCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    email,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		// The unique index backstops concurrent registrations that pass
		// the existence check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrEmailInUse
		}
		return "", err
	}

	return u.tokenService.Create(user.ID, user.Name, user.Email)
}

func (u *accountUsecase) Login(req *dto.LoginRequest) (string, error) {
	user, err := u.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidEmail
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return "", ErrInvalidPassword
	}

	return u.tokenService.Create(user.ID, user.Name, user.Email)
}

func (u *accountUsecase) ChangePassword(userID string, req *dto.ChangePasswordRequest) (string, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if !repository.CheckPasswordHash(req.OldPassword, user.Password) {
		return "", ErrOldPasswordMismatch
	}

	hashedPassword, err := repository.HashPassword(req.NewPassword, u.config.BcryptCost)
	if err != nil {
		return "", err
	}

	updated, err := u.userRepo.UpdatePassword(user.ID, hashedPassword)
	if err != nil {
		return "", err
	}
	if !updated {
		return "", ErrUserNotFound
	}

	return u.tokenService.Create(user.ID, user.Name, user.Email)
}

func (u *accountUsecase) GetProfile(userID string) (*dto.Profile, string, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	tok, err := u.tokenService.Create(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, "", err
	}

	return &dto.Profile{
		Name:     user.Name,
		LastName: user.LastName,
		Email:    user.Email,
		Location: user.Location,
	}, tok, nil
}

func (u *accountUsecase) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (string, error) {
	user := &domain.User{
		ID:       userID,
		Name:     req.Name,
		LastName: req.LastName,
		Email:    normalizeEmail(req.Email),
		Location: req.Location,
	}

	updated, err := u.userRepo.UpdateProfile(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", ErrEmailInUse
		}
		return "", err
	}
	if !updated {
		return "", ErrUserNotFound
	}

	return u.tokenService.Create(user.ID, user.Name, user.Email)
}

func (u *accountUsecase) DeleteAccount(userID string) error {
	return u.userRepo.Delete(userID)
}
