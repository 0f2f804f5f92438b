package services

import (
	"context"
	"mime/multipart"

	"github.com/mcardenas/campuswatch/internal/app/models"
	"github.com/mcardenas/campuswatch/internal/app/repositories"
	"github.com/mcardenas/campuswatch/internal/pkg/filestorage"
	"github.com/mcardenas/campuswatch/internal/pkg/logger"
)

// UserService manages user profile pictures
type UserService struct {
	userRepository repositories.IUserRepository
	fileStorage    filestorage.FileStorage
}

// NewUserService creates a new UserService
func NewUserService(userRepository repositories.IUserRepository, fileStorage filestorage.FileStorage) *UserService {
	return &UserService{
		userRepository: userRepository,
		fileStorage:    fileStorage,
	}
}

// UpdateProfilePic stores the uploaded picture and points the user at it.
// A previously stored picture is removed afterwards; a leftover file on
// failure is harmless.
func (s *UserService) UpdateProfilePic(ctx context.Context, userID int64, file *multipart.FileHeader) (*models.User, error) {
	current, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	path, err := s.fileStorage.SaveFileWithPath(file, "profile")
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.UpdateProfilePic(ctx, userID, &path)
	if err != nil {
		return nil, err
	}

	if current.ProfilePic != nil {
		if err := s.fileStorage.DeleteFile(*current.ProfilePic); err != nil {
			logger.Warn().Err(err).Str("path", *current.ProfilePic).Msg("Failed to delete old profile picture")
		}
	}

	return user, nil
}

// RemoveProfilePic clears the user's picture and deletes the stored file
func (s *UserService) RemoveProfilePic(ctx context.Context, userID int64) (*models.User, error) {
	current, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.UpdateProfilePic(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	if current.ProfilePic != nil {
		if err := s.fileStorage.DeleteFile(*current.ProfilePic); err != nil {
			logger.Warn().Err(err).Str("path", *current.ProfilePic).Msg("Failed to delete profile picture")
		}
	}

	return user, nil
}
