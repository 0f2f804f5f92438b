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

// StudentController handles student roster operations
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// CreateStudent registers a student under the calling user
// @Summary Create a student
// @Description Registers a student owned by the authenticated user
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.CreateStudentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 409 {object} dto.ErrorResponse "Student ID or email already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create student payload")
		middleware.HandleAPIError(ctx, middleware.NewValidationError(err))
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateStudentResponse{Success: true, Student: student})
}

// ListStudents returns the caller's students with their violations
// @Summary List students
// @Description Returns the authenticated user's students, each with its violations, a count and the most recent violation date
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StudentWithViolations
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrUnauthorized)
		return
	}

	students, err := c.studentService.ListStudents(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// UpdateProfilePic stores a profile picture for the addressed student
// @Summary Upload a student profile picture
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student internal ID"
// @Param profilePic formData file true "Image file"
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse "Missing file or bad id"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/profile-pic [patch]
func (c *StudentController) UpdateProfilePic(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid student id"))
		return
	}

	file, err := ctx.FormFile("profilePic")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "profilePic file is required"))
		return
	}

	student, err := c.studentService.UpdateProfilePic(ctx.Request.Context(), id, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// RemoveProfilePic clears the addressed student's profile picture
// @Summary Delete a student profile picture
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student internal ID"
// @Success 200 {object} models.Student
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/profile-pic [delete]
func (c *StudentController) RemoveProfilePic(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid student id"))
		return
	}

	student, err := c.studentService.RemoveProfilePic(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}
