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

// ViolationController handles violation record operations
type ViolationController struct {
	violationService services.ViolationService
	logger           zerolog.Logger
}

// NewViolationController creates a new ViolationController
func NewViolationController(violationService services.ViolationService, logger zerolog.Logger) *ViolationController {
	return &ViolationController{
		violationService: violationService,
		logger:           logger,
	}
}

// CreateViolation records a violation against one of the caller's students
// @Summary Record a violation
// @Tags violations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateViolationRequest true "Violation information"
// @Success 201 {object} models.Violation
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or severity"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /violations [post]
func (c *ViolationController) CreateViolation(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateViolationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create violation payload")
		middleware.HandleAPIError(ctx, middleware.NewValidationError(err))
		return
	}

	violation, err := c.violationService.CreateViolation(ctx.Request.Context(), userID, middleware.GetUsername(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, violation)
}

// ListViolations returns every violation of the caller's students
// @Summary List violations
// @Tags violations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Violation
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /violations [get]
func (c *ViolationController) ListViolations(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	violations, err := c.violationService.ListViolations(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, violations)
}

// UpdateViolation applies a partial update to a violation the caller owns
// @Summary Update a violation
// @Tags violations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Violation ID"
// @Param request body dto.UpdateViolationRequest true "Fields to change"
// @Success 200 {object} models.Violation
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or severity"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Violation not owned by caller"
// @Failure 404 {object} dto.ErrorResponse "Violation not found"
// @Router /violations/{id} [put]
func (c *ViolationController) UpdateViolation(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid violation id"))
		return
	}

	var req dto.UpdateViolationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update violation payload")
		middleware.HandleAPIError(ctx, middleware.NewValidationError(err))
		return
	}

	violation, err := c.violationService.UpdateViolation(ctx.Request.Context(), userID, id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, violation)
}

// DeleteViolation removes a violation the caller owns
// @Summary Delete a violation
// @Tags violations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Violation ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Violation not owned by caller"
// @Failure 404 {object} dto.ErrorResponse "Violation not found"
// @Router /violations/{id} [delete]
func (c *ViolationController) DeleteViolation(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid violation id"))
		return
	}

	if err := c.violationService.DeleteViolation(ctx.Request.Context(), userID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// GetStats aggregates the caller's violations
// @Summary Violation statistics
// @Description Totals by severity plus counts for the current calendar month and Sunday-anchored week
// @Tags violations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ViolationStatsResponse
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /violations/stats [get]
func (c *ViolationController) GetStats(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	stats, err := c.violationService.GetStats(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
