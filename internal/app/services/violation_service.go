package services

import (
	"context"
	"errors"
	"time"

	"github.com/mcardenas/campuswatch/internal/app/models"
	"github.com/mcardenas/campuswatch/internal/app/models/dto"
	"github.com/mcardenas/campuswatch/internal/app/repositories"
	"github.com/mcardenas/campuswatch/internal/pkg/apperrors"
	"github.com/mcardenas/campuswatch/internal/pkg/helpers"
	"github.com/mcardenas/campuswatch/internal/pkg/logger"
)

// ViolationService defines operations on violation records. Every operation
// is scoped to the calling user through the owning student; ownership is
// checked on each call, never cached.
type ViolationService interface {
	CreateViolation(ctx context.Context, userID int64, username string, req dto.CreateViolationRequest) (*models.Violation, error)
	ListViolations(ctx context.Context, userID int64) ([]*models.Violation, error)
	UpdateViolation(ctx context.Context, userID int64, id int64, req dto.UpdateViolationRequest) (*models.Violation, error)
	DeleteViolation(ctx context.Context, userID int64, id int64) error
	GetStats(ctx context.Context, userID int64) (*dto.ViolationStatsResponse, error)
}

type violationServiceImpl struct {
	violationRepository repositories.IViolationRepository
	studentRepository   repositories.IStudentRepository
	now                 func() time.Time
}

// NewViolationService creates a new ViolationService
func NewViolationService(
	violationRepository repositories.IViolationRepository,
	studentRepository repositories.IStudentRepository,
) ViolationService {
	return &violationServiceImpl{
		violationRepository: violationRepository,
		studentRepository:   studentRepository,
		now:                 time.Now,
	}
}

// resolveOwnedStudent looks up a student by student number and verifies the
// caller owns it. A student owned by someone else is reported as not found,
// so callers cannot probe other users' rosters.
func (s *violationServiceImpl) resolveOwnedStudent(ctx context.Context, userID int64, studentID string) (*models.Student, error) {
	student, err := s.studentRepository.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.UserID != userID {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// CreateViolation records a violation against one of the caller's students.
// DateCommitted defaults to the current time, CreatedBy to the caller's
// username.
func (s *violationServiceImpl) CreateViolation(ctx context.Context, userID int64, username string, req dto.CreateViolationRequest) (*models.Violation, error) {
	if !req.Severity.Valid() {
		return nil, apperrors.ErrInvalidSeverity
	}

	if _, err := s.resolveOwnedStudent(ctx, userID, req.StudentID); err != nil {
		return nil, err
	}

	dateCommitted := s.now()
	if req.DateCommitted != nil {
		dateCommitted = *req.DateCommitted
	}

	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = username
	}

	violation := &models.Violation{
		StudentID:     req.StudentID,
		Description:   req.Description,
		Severity:      req.Severity,
		DateCommitted: dateCommitted,
		CreatedBy:     createdBy,
		Notes:         req.Notes,
	}

	if err := s.violationRepository.Create(ctx, violation); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", userID).Str("studentID", violation.StudentID).
		Str("severity", string(violation.Severity)).Msg("Violation recorded")
	return violation, nil
}

// ListViolations returns every violation belonging to the caller's students
func (s *violationServiceImpl) ListViolations(ctx context.Context, userID int64) ([]*models.Violation, error) {
	students, err := s.studentRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	studentIDs := make([]string, 0, len(students))
	for _, student := range students {
		studentIDs = append(studentIDs, student.StudentID)
	}

	return s.violationRepository.GetByStudentIDs(ctx, studentIDs)
}

// checkViolationOwnership loads a violation and verifies the caller owns the
// student it belongs to. A violation whose student cannot be resolved is
// treated as not owned.
func (s *violationServiceImpl) checkViolationOwnership(ctx context.Context, userID int64, id int64) (*models.Violation, error) {
	violation, err := s.violationRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepository.GetByStudentID(ctx, violation.StudentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrPermissionDenied
		}
		return nil, err
	}
	if student.UserID != userID {
		return nil, apperrors.ErrPermissionDenied
	}

	return violation, nil
}

// UpdateViolation applies a partial update to a violation the caller owns.
// Nil request fields are left unchanged.
func (s *violationServiceImpl) UpdateViolation(ctx context.Context, userID int64, id int64, req dto.UpdateViolationRequest) (*models.Violation, error) {
	if req.Severity != nil && !req.Severity.Valid() {
		return nil, apperrors.ErrInvalidSeverity
	}

	if _, err := s.checkViolationOwnership(ctx, userID, id); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Severity != nil {
		fields["severity"] = *req.Severity
	}
	if req.DateCommitted != nil {
		fields["date_committed"] = *req.DateCommitted
	}
	if req.Notes != nil {
		fields["notes"] = req.Notes
	}
	if req.CreatedBy != nil {
		fields["created_by"] = *req.CreatedBy
	}

	return s.violationRepository.Update(ctx, id, fields)
}

// DeleteViolation removes a violation the caller owns
func (s *violationServiceImpl) DeleteViolation(ctx context.Context, userID int64, id int64) error {
	if _, err := s.checkViolationOwnership(ctx, userID, id); err != nil {
		return err
	}

	return s.violationRepository.Delete(ctx, id)
}

// GetStats aggregates the caller's violations by severity and by recency.
// ThisWeek uses a Sunday-anchored week, which can straddle a month boundary,
// so it is not necessarily a subset of ThisMonth.
func (s *violationServiceImpl) GetStats(ctx context.Context, userID int64) (*dto.ViolationStatsResponse, error) {
	violations, err := s.ListViolations(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	monthStart := helpers.StartOfMonth(now)
	weekStart := helpers.StartOfWeek(now)

	stats := &dto.ViolationStatsResponse{Total: len(violations)}
	for _, v := range violations {
		switch v.Severity {
		case models.SeverityMinor:
			stats.Minor++
		case models.SeverityMajor:
			stats.Major++
		}
		if !v.DateCommitted.Before(monthStart) {
			stats.ThisMonth++
		}
		if !v.DateCommitted.Before(weekStart) {
			stats.ThisWeek++
		}
	}

	return stats, nil
}
