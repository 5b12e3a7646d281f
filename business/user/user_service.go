package user

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"suplementosPro/domain"
	"suplementosPro/pkg/logger"
	"suplementosPro/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type userService struct {
	userRepo UserRepository
	validate *validator.Validate
}

func NewUserService(userRepo UserRepository, validate *validator.Validate) *userService {
	return &userService{
		userRepo: userRepo,
		validate: validate,
	}
}

// Register creates an account and issues a token right away, so a fresh
// registration can shop without a separate login call.
func (s *userService) Register(ctx context.Context, user *domain.User, password string) (string, domain.User, error) {
	if err := s.validate.Var(user.Username, "required,min=3"); err != nil {
		logger.Error("Invalid username", err)
		return "", domain.User{}, errors.New("username must be at least 3 characters")
	}

	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return "", domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return "", domain.User{}, errors.New("password must be at least 6 characters")
	}

	// Pre-check both identities; the storage layer still enforces uniqueness.
	if existing, err := s.userRepo.FindByUsername(ctx, user.Username); err == nil && existing.ID > 0 {
		logger.Error("Username already exists")
		return "", domain.User{}, domain.ErrUserConflict
	}
	if existing, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil && existing.ID > 0 {
		logger.Error("Email already exists")
		return "", domain.User{}, domain.ErrUserConflict
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return "", domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return "", domain.User{}, err
	}

	userIDStr := strconv.FormatUint(uint64(newUser.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, newUser.Username)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	return token, newUser, nil
}

// Login verifies credentials and issues a token. The login field matches a
// username first and falls back to email, so both prototype frontends work.
func (s *userService) Login(ctx context.Context, login, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, login)
	if err != nil && strings.Contains(login, "@") {
		user, err = s.userRepo.FindByEmail(ctx, login)
	}
	if err != nil {
		logger.Error("Unknown login", err)
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		logger.Error("User password incorrect")
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Username)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	return token, user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user by ID", err)
		return domain.User{}, err
	}

	return user, nil
}
