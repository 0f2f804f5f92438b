package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mcardenas/campuswatch/internal/app/models/dto"
	"github.com/mcardenas/campuswatch/internal/pkg/apperrors"
	"github.com/mcardenas/campuswatch/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses. Every failure
// body is the same shape; unknown errors are logged and reported as a plain
// server error so internals never leak to the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(messageOr(err, "Validation failed")))
	case errors.Is(err, apperrors.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid email format"))
	case errors.Is(err, apperrors.ErrInvalidSeverity):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Severity must be Minor or Major"))
	case errors.Is(err, apperrors.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email already registered"))
	case errors.Is(err, apperrors.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username already taken"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		// Login failures are reported as a bad request, not a 401, so clients
		// do not treat them as an expired session.
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(messageOr(err, "Permission denied")))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student not found"))
	case errors.Is(err, apperrors.ErrViolationNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Violation not found"))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(messageOr(err, "Resource not found")))
	case errors.Is(err, apperrors.ErrStudentIDExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Student ID already exists"))
	case errors.Is(err, apperrors.ErrStudentEmailExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Student email already exists"))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(messageOr(err, "Conflict")))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Server error"))
	}
}

// messageOr returns the CustomError message when one was attached, otherwise
// the fallback
func messageOr(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
