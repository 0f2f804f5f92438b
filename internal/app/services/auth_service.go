package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/mcardenas/campuswatch/internal/app/models"
	"github.com/mcardenas/campuswatch/internal/app/models/dto"
	"github.com/mcardenas/campuswatch/internal/app/repositories"
	"github.com/mcardenas/campuswatch/internal/pkg/apperrors"
	"github.com/mcardenas/campuswatch/internal/pkg/auth"
	"github.com/mcardenas/campuswatch/internal/pkg/logger"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// AuthService handles account registration, login and profile reads
type AuthService struct {
	userRepository repositories.IUserRepository
	jwtService     *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepository repositories.IUserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Register creates a new account. Username and email must be unused; the
// password is stored only as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	if !emailRegex.MatchString(req.Email) {
		return nil, apperrors.ErrInvalidEmail
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User registered")
	return user, nil
}

// Login verifies credentials and returns a signed session token with the
// account. Unknown email and wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token")
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// GetProfile returns the account behind a session
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepository.GetByID(ctx, userID)
}
