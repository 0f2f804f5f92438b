package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcardenas/campuswatch/internal/app/models"
	"github.com/mcardenas/campuswatch/internal/pkg/apperrors"
	"github.com/mcardenas/campuswatch/internal/pkg/dberrors"
)

// IStudentRepository defines the interface for student-related database operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) ([]*models.Student, error)
	UpdateProfilePic(ctx context.Context, id int64, profilePic *string) (*models.Student, error)
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, student_id, first_name, middle_name, last_name, course, program, year, email, user_id, profile_pic, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID, &student.StudentID, &student.FirstName, &student.MiddleName,
		&student.LastName, &student.Course, &student.Program, &student.Year,
		&student.Email, &student.UserID, &student.ProfilePic,
		&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create inserts a new student owned by student.UserID. Duplicate student
// numbers and emails surface as conflict errors via the unique constraints.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (student_id, first_name, middle_name, last_name, course, program, year, email, user_id, profile_pic)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`,
		student.StudentID, student.FirstName, student.MiddleName, student.LastName,
		student.Course, student.Program, student.Year, student.Email,
		student.UserID, student.ProfilePic).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			return apperrors.ErrStudentIDExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrStudentEmailExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by internal id
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE id = $1`,
		id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByStudentID retrieves a student by its human-readable student number
func (r *StudentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE student_id = $1`,
		studentID))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByUserID retrieves all students owned by a user, in insertion order
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+studentColumns+`
		FROM students
		WHERE user_id = $1
		ORDER BY id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	return students, nil
}

// UpdateProfilePic sets or clears a student's profile picture path and
// returns the updated record
func (r *StudentRepository) UpdateProfilePic(ctx context.Context, id int64, profilePic *string) (*models.Student, error) {
	student, err := scanStudent(r.db.QueryRow(ctx, `
		UPDATE students
		SET profile_pic = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+studentColumns,
		profilePic, id))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error updating profile picture: %w", err)
	}

	return student, nil
}
