package service

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/coursedesk/coursedesk/internal/database/models"
	"github.com/coursedesk/coursedesk/internal/database/repository"
)

// UserService defines the interface for user business logic
type UserService interface {
	Register(ctx context.Context, firstName, lastName, emailAddress, password string) (*models.User, error)
	Authenticate(ctx context.Context, emailAddress, password string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *userService) Register(ctx context.Context, firstName, lastName, emailAddress, password string) (*models.User, error) {
	s.logger.Info("📝 [UserService] Registration attempt", "email", emailAddress)

	// Check if email already exists. The unique index on users.email_address
	// remains the source of truth; this only gives the common case a cheap answer.
	existingUser, err := s.userRepo.FindByEmail(ctx, emailAddress)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [UserService] Database error", "error", err)
		return nil, err
	}

	if existingUser != nil {
		s.logger.Warn("⚠️ [UserService] Email already registered", "email", emailAddress)
		return nil, ErrEmailAlreadyExists
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
		return nil, err
	}

	// Create user
	user := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		EmailAddress: emailAddress,
		Password:     string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the race between the pre-check and the insert
			s.logger.Warn("⚠️ [UserService] Email already registered", "email", emailAddress)
			return nil, ErrEmailAlreadyExists
		}
		s.logger.Error("❌ [UserService] Failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User registered successfully", "user_id", user.ID)
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, emailAddress, password string) (*models.User, error) {
	// Find user (exact-match email as stored)
	user, err := s.userRepo.FindByEmail(ctx, emailAddress)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [UserService] User not found", "email", emailAddress)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("❌ [UserService] Database error", "error", err)
		return nil, err
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("⚠️ [UserService] Invalid password", "email", emailAddress)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Service errors
var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
