package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mcardenas/campuswatch/internal/app/models/dto"
	"github.com/mcardenas/campuswatch/internal/app/services"
	"github.com/mcardenas/campuswatch/internal/middleware"
	"github.com/mcardenas/campuswatch/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// ProfileController handles user profile picture uploads
type ProfileController struct {
	userService *services.UserService
	logger      zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(userService *services.UserService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		userService: userService,
		logger:      logger,
	}
}

// UploadProfilePic stores a profile picture for the addressed user
// @Summary Upload a user profile picture
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param profilePic formData file true "Image file"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or bad id"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /profile/upload/{id} [post]
func (c *ProfileController) UploadProfilePic(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid user id"))
		return
	}

	file, err := ctx.FormFile("profilePic")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "profilePic file is required"))
		return
	}

	user, err := c.userService.UpdateProfilePic(ctx.Request.Context(), userID, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{Success: true, User: toUserInfo(user)})
}

// DeleteProfilePic removes the addressed user's profile picture
// @Summary Delete a user profile picture
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /profile/delete/{id} [delete]
func (c *ProfileController) DeleteProfilePic(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid user id"))
		return
	}

	user, err := c.userService.RemoveProfilePic(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{Success: true, User: toUserInfo(user)})
}
