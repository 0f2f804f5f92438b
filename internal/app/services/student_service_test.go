package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mcardenas/campuswatch/internal/app/models"
	"github.com/mcardenas/campuswatch/internal/app/models/dto"
	"github.com/mcardenas/campuswatch/internal/pkg/apperrors"
)

func newStudentServiceForTest(studentRepo *mockStudentRepo, violationRepo *mockViolationRepo) StudentService {
	return NewStudentService(studentRepo, violationRepo, nil)
}

func TestCreateStudentSetsOwner(t *testing.T) {
	studentRepo := newMockStudentRepo()
	svc := newStudentServiceForTest(studentRepo, newMockViolationRepo())

	student, err := svc.CreateStudent(context.Background(), 7, dto.CreateStudentRequest{
		StudentID: "2021-00123",
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria@school.test",
		Course:    "BSIT",
		Program:   "IT",
		Year:      2,
	})
	if err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}
	if student.UserID != 7 {
		t.Errorf("UserID = %d, want the calling user", student.UserID)
	}
	if student.ID == 0 {
		t.Error("expected student to be assigned an id")
	}
}

func TestCreateStudentDuplicates(t *testing.T) {
	studentRepo := newMockStudentRepo()
	svc := newStudentServiceForTest(studentRepo, newMockViolationRepo())

	base := dto.CreateStudentRequest{
		StudentID: "2021-00123",
		FirstName: "Maria",
		LastName:  "Santos",
		Email:     "maria@school.test",
		Course:    "BSIT",
		Program:   "IT",
		Year:      2,
	}
	if _, err := svc.CreateStudent(context.Background(), 1, base); err != nil {
		t.Fatalf("CreateStudent: %v", err)
	}

	dup := base
	dup.Email = "other@school.test"
	if _, err := svc.CreateStudent(context.Background(), 2, dup); !errors.Is(err, apperrors.ErrStudentIDExists) {
		t.Errorf("duplicate student number err = %v, want ErrStudentIDExists", err)
	}

	dup = base
	dup.StudentID = "2021-00456"
	if _, err := svc.CreateStudent(context.Background(), 2, dup); !errors.Is(err, apperrors.ErrStudentEmailExists) {
		t.Errorf("duplicate email err = %v, want ErrStudentEmailExists", err)
	}
}

func TestListStudentsAggregation(t *testing.T) {
	studentRepo := newMockStudentRepo()
	violationRepo := newMockViolationRepo()
	svc := newStudentServiceForTest(studentRepo, violationRepo)

	seedStudent(t, studentRepo, 1, "s-1")
	seedStudent(t, studentRepo, 1, "s-2")
	seedStudent(t, studentRepo, 2, "s-3")

	d1 := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	for _, v := range []*models.Violation{
		{StudentID: "s-1", Description: "a", Severity: models.SeverityMinor, DateCommitted: d2, CreatedBy: "t"},
		{StudentID: "s-1", Description: "b", Severity: models.SeverityMajor, DateCommitted: d1, CreatedBy: "t"},
		{StudentID: "s-3", Description: "c", Severity: models.SeverityMinor, DateCommitted: d1, CreatedBy: "t"},
	} {
		violationRepo.Create(context.Background(), v)
	}

	result, err := svc.ListStudents(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("got %d students, want 2", len(result))
	}

	first := result[0]
	if first.StudentID != "s-1" {
		t.Fatalf("first student = %q, want s-1 (insertion order)", first.StudentID)
	}
	if first.ViolationCount != 2 || len(first.Violations) != 2 {
		t.Errorf("s-1 count = %d len = %d, want 2/2", first.ViolationCount, len(first.Violations))
	}
	if first.LastViolation == nil || !first.LastViolation.Equal(d2) {
		t.Errorf("s-1 LastViolation = %v, want %v", first.LastViolation, d2)
	}
	// Violations attach in date order regardless of insertion order
	if !first.Violations[0].DateCommitted.Equal(d1) {
		t.Errorf("violations not ordered by date: first is %v", first.Violations[0].DateCommitted)
	}

	second := result[1]
	if second.ViolationCount != 0 {
		t.Errorf("s-2 count = %d, want 0", second.ViolationCount)
	}
	if second.Violations == nil || len(second.Violations) != 0 {
		t.Error("student without violations must carry an empty, non-nil list")
	}
	if second.LastViolation != nil {
		t.Errorf("s-2 LastViolation = %v, want nil", second.LastViolation)
	}
}

func TestListStudentsIsolation(t *testing.T) {
	studentRepo := newMockStudentRepo()
	violationRepo := newMockViolationRepo()
	svc := newStudentServiceForTest(studentRepo, violationRepo)

	seedStudent(t, studentRepo, 1, "s-1")
	seedStudent(t, studentRepo, 2, "s-2")
	violationRepo.Create(context.Background(), &models.Violation{
		StudentID: "s-2", Description: "x", Severity: models.SeverityMinor,
		DateCommitted: time.Now(), CreatedBy: "t",
	})

	result, err := svc.ListStudents(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListStudents: %v", err)
	}
	if len(result) != 1 || result[0].StudentID != "s-1" {
		t.Fatalf("user 1 sees %d students, want only their own", len(result))
	}
	if result[0].ViolationCount != 0 {
		t.Error("another user's violations leaked into the aggregate")
	}

	empty, err := svc.ListStudents(context.Background(), 9)
	if err != nil {
		t.Fatalf("ListStudents for empty roster: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("user with no students got %d entries", len(empty))
	}
}
