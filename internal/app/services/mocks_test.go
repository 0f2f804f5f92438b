package services

import (
	"context"
	"sort"
	"time"

	"github.com/mcardenas/campuswatch/internal/app/models"
	"github.com/mcardenas/campuswatch/internal/pkg/apperrors"
)

// In-memory repository doubles used across the service tests.

type mockUserRepo struct {
	users  []*models.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailTaken
		}
	}
	for _, u := range m.users {
		if u.Username == user.Username {
			return apperrors.ErrUsernameTaken
		}
	}
	user.ID = m.nextID
	m.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	m.users = append(m.users, &copied)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) UsernameExists(_ context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) UpdateProfilePic(_ context.Context, userID int64, profilePic *string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == userID {
			u.ProfilePic = profilePic
			u.UpdatedAt = time.Now()
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

type mockStudentRepo struct {
	students []*models.Student
	nextID   int64
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{nextID: 1}
}

func (m *mockStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, s := range m.students {
		if s.StudentID == student.StudentID {
			return apperrors.ErrStudentIDExists
		}
	}
	for _, s := range m.students {
		if s.Email == student.Email {
			return apperrors.ErrStudentEmailExists
		}
	}
	student.ID = m.nextID
	m.nextID++
	student.CreatedAt = time.Now()
	student.UpdatedAt = student.CreatedAt
	copied := *student
	m.students = append(m.students, &copied)
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*models.Student, error) {
	for _, s := range m.students {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockStudentRepo) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	for _, s := range m.students {
		if s.StudentID == studentID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *mockStudentRepo) GetByUserID(_ context.Context, userID int64) ([]*models.Student, error) {
	result := make([]*models.Student, 0)
	for _, s := range m.students {
		if s.UserID == userID {
			copied := *s
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockStudentRepo) UpdateProfilePic(_ context.Context, id int64, profilePic *string) (*models.Student, error) {
	for _, s := range m.students {
		if s.ID == id {
			s.ProfilePic = profilePic
			s.UpdatedAt = time.Now()
			copied := *s
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

type mockViolationRepo struct {
	violations []*models.Violation
	nextID     int64
}

func newMockViolationRepo() *mockViolationRepo {
	return &mockViolationRepo{nextID: 1}
}

func (m *mockViolationRepo) Create(_ context.Context, violation *models.Violation) error {
	violation.ID = m.nextID
	m.nextID++
	violation.CreatedAt = time.Now()
	copied := *violation
	m.violations = append(m.violations, &copied)
	return nil
}

func (m *mockViolationRepo) GetByID(_ context.Context, id int64) (*models.Violation, error) {
	for _, v := range m.violations {
		if v.ID == id {
			copied := *v
			return &copied, nil
		}
	}
	return nil, apperrors.ErrViolationNotFound
}

func (m *mockViolationRepo) GetByStudentIDs(_ context.Context, studentIDs []string) ([]*models.Violation, error) {
	result := make([]*models.Violation, 0)
	if len(studentIDs) == 0 {
		return result, nil
	}
	wanted := make(map[string]bool, len(studentIDs))
	for _, id := range studentIDs {
		wanted[id] = true
	}
	for _, v := range m.violations {
		if wanted[v.StudentID] {
			copied := *v
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DateCommitted.Equal(result[j].DateCommitted) {
			return result[i].ID < result[j].ID
		}
		return result[i].DateCommitted.Before(result[j].DateCommitted)
	})
	return result, nil
}

func (m *mockViolationRepo) Update(_ context.Context, id int64, fields map[string]interface{}) (*models.Violation, error) {
	for _, v := range m.violations {
		if v.ID == id {
			if value, ok := fields["description"]; ok {
				v.Description = value.(string)
			}
			if value, ok := fields["severity"]; ok {
				v.Severity = value.(models.Severity)
			}
			if value, ok := fields["date_committed"]; ok {
				v.DateCommitted = value.(time.Time)
			}
			if value, ok := fields["notes"]; ok {
				v.Notes = value.(*string)
			}
			if value, ok := fields["created_by"]; ok {
				v.CreatedBy = value.(string)
			}
			copied := *v
			return &copied, nil
		}
	}
	return nil, apperrors.ErrViolationNotFound
}

func (m *mockViolationRepo) Delete(_ context.Context, id int64) error {
	for i, v := range m.violations {
		if v.ID == id {
			m.violations = append(m.violations[:i], m.violations[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrViolationNotFound
}
