package services

import (
	"context"
	"mime/multipart"

	"github.com/mcardenas/campuswatch/internal/app/models"
	"github.com/mcardenas/campuswatch/internal/app/models/dto"
	"github.com/mcardenas/campuswatch/internal/app/repositories"
	"github.com/mcardenas/campuswatch/internal/pkg/filestorage"
	"github.com/mcardenas/campuswatch/internal/pkg/logger"
)

// StudentService defines operations on the caller's student roster
type StudentService interface {
	CreateStudent(ctx context.Context, userID int64, req dto.CreateStudentRequest) (*models.Student, error)
	ListStudents(ctx context.Context, userID int64) ([]*dto.StudentWithViolations, error)
	UpdateProfilePic(ctx context.Context, id int64, file *multipart.FileHeader) (*models.Student, error)
	RemoveProfilePic(ctx context.Context, id int64) (*models.Student, error)
}

type studentServiceImpl struct {
	studentRepository   repositories.IStudentRepository
	violationRepository repositories.IViolationRepository
	fileStorage         filestorage.FileStorage
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepository repositories.IStudentRepository,
	violationRepository repositories.IViolationRepository,
	fileStorage filestorage.FileStorage,
) StudentService {
	return &studentServiceImpl{
		studentRepository:   studentRepository,
		violationRepository: violationRepository,
		fileStorage:         fileStorage,
	}
}

// CreateStudent registers a student under the calling user
func (s *studentServiceImpl) CreateStudent(ctx context.Context, userID int64, req dto.CreateStudentRequest) (*models.Student, error) {
	student := &models.Student{
		StudentID:  req.StudentID,
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Course:     req.Course,
		Program:    req.Program,
		Year:       req.Year,
		Email:      req.Email,
		UserID:     userID,
		ProfilePic: req.ProfilePic,
	}

	if err := s.studentRepository.Create(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", userID).Str("studentID", student.StudentID).Msg("Student created")
	return student, nil
}

// ListStudents returns the caller's students, each joined with its violations
// by student number. The aggregate is computed on every call; it is never
// stored, so it cannot go stale.
func (s *studentServiceImpl) ListStudents(ctx context.Context, userID int64) ([]*dto.StudentWithViolations, error) {
	students, err := s.studentRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	studentIDs := make([]string, 0, len(students))
	result := make([]*dto.StudentWithViolations, 0, len(students))
	index := make(map[string]*dto.StudentWithViolations, len(students))
	for _, student := range students {
		entry := &dto.StudentWithViolations{
			Student:    *student,
			Violations: make([]*models.Violation, 0),
		}
		result = append(result, entry)
		index[student.StudentID] = entry
		studentIDs = append(studentIDs, student.StudentID)
	}

	violations, err := s.violationRepository.GetByStudentIDs(ctx, studentIDs)
	if err != nil {
		return nil, err
	}

	// Violations arrive ordered by date then id; the >= comparison makes the
	// newest record win lastViolation ties on equal dates.
	for _, v := range violations {
		entry, ok := index[v.StudentID]
		if !ok {
			continue
		}
		entry.Violations = append(entry.Violations, v)
		entry.ViolationCount++
		if entry.LastViolation == nil || !v.DateCommitted.Before(*entry.LastViolation) {
			date := v.DateCommitted
			entry.LastViolation = &date
		}
	}

	return result, nil
}

// UpdateProfilePic stores the uploaded picture against the student addressed
// by internal id
func (s *studentServiceImpl) UpdateProfilePic(ctx context.Context, id int64, file *multipart.FileHeader) (*models.Student, error) {
	current, err := s.studentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := s.fileStorage.SaveFileWithPath(file, "students")
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepository.UpdateProfilePic(ctx, id, &path)
	if err != nil {
		return nil, err
	}

	if current.ProfilePic != nil {
		if err := s.fileStorage.DeleteFile(*current.ProfilePic); err != nil {
			logger.Warn().Err(err).Str("path", *current.ProfilePic).Msg("Failed to delete old profile picture")
		}
	}

	return student, nil
}

// RemoveProfilePic clears the student's picture and deletes the stored file
func (s *studentServiceImpl) RemoveProfilePic(ctx context.Context, id int64) (*models.Student, error) {
	current, err := s.studentRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepository.UpdateProfilePic(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	if current.ProfilePic != nil {
		if err := s.fileStorage.DeleteFile(*current.ProfilePic); err != nil {
			logger.Warn().Err(err).Str("path", *current.ProfilePic).Msg("Failed to delete profile picture")
		}
	}

	return student, nil
}
