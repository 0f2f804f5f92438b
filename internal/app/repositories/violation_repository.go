package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcardenas/campuswatch/internal/app/models"
	"github.com/mcardenas/campuswatch/internal/pkg/apperrors"
	"github.com/mcardenas/campuswatch/internal/pkg/logger"
)

// IViolationRepository defines the interface for violation-related database operations
type IViolationRepository interface {
	Create(ctx context.Context, violation *models.Violation) error
	GetByID(ctx context.Context, id int64) (*models.Violation, error)
	GetByStudentIDs(ctx context.Context, studentIDs []string) ([]*models.Violation, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Violation, error)
	Delete(ctx context.Context, id int64) error
}

// ViolationRepository handles violation database operations
type ViolationRepository struct {
	db *pgxpool.Pool
}

// NewViolationRepository creates a new ViolationRepository
func NewViolationRepository(db *pgxpool.Pool) *ViolationRepository {
	return &ViolationRepository{
		db: db,
	}
}

const violationColumns = `id, student_id, description, severity, date_committed, created_by, notes, created_at`

func scanViolation(row pgx.Row) (*models.Violation, error) {
	v := &models.Violation{}
	err := row.Scan(
		&v.ID, &v.StudentID, &v.Description, &v.Severity,
		&v.DateCommitted, &v.CreatedBy, &v.Notes, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Create inserts a new violation
func (r *ViolationRepository) Create(ctx context.Context, violation *models.Violation) error {
	sqlStr, args, err := squirrel.Insert("violations").
		Columns("student_id", "description", "severity", "date_committed", "created_by", "notes").
		Values(violation.StudentID, violation.Description, violation.Severity,
			violation.DateCommitted, violation.CreatedBy, violation.Notes).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create violation SQL")
		return err
	}

	err = r.db.QueryRow(ctx, sqlStr, args...).Scan(&violation.ID, &violation.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating violation: %w", err)
	}

	return nil
}

// GetByID retrieves a violation by internal id
func (r *ViolationRepository) GetByID(ctx context.Context, id int64) (*models.Violation, error) {
	sqlStr, args, err := squirrel.Select(violationColumns).
		From("violations").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	v, err := scanViolation(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrViolationNotFound
		}
		return nil, fmt.Errorf("error retrieving violation: %w", err)
	}

	return v, nil
}

// GetByStudentIDs retrieves all violations whose student number is in the
// given set. Rows are ordered by date committed then id, so a scan that keeps
// the last row at each maximal date resolves ties reproducibly.
func (r *ViolationRepository) GetByStudentIDs(ctx context.Context, studentIDs []string) ([]*models.Violation, error) {
	violations := make([]*models.Violation, 0)
	if len(studentIDs) == 0 {
		return violations, nil
	}

	sqlStr, args, err := squirrel.Select(violationColumns).
		From("violations").
		Where(squirrel.Eq{"student_id": studentIDs}).
		OrderBy("date_committed ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list violations SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing violations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scanViolation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning violation: %w", err)
		}
		violations = append(violations, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating violations: %w", err)
	}

	return violations, nil
}

// Update applies a partial update and returns the updated record. The fields
// map is keyed by column name; callers control which columns change.
func (r *ViolationRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) (*models.Violation, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	sqlStr, args, err := squirrel.Update("violations").
		SetMap(fields).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + violationColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update violation SQL")
		return nil, err
	}

	v, err := scanViolation(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrViolationNotFound
		}
		return nil, fmt.Errorf("error updating violation: %w", err)
	}

	return v, nil
}

// Delete removes a violation by internal id
func (r *ViolationRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := squirrel.Delete("violations").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("error deleting violation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrViolationNotFound
	}

	return nil
}
