package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mcardenas/campuswatch/internal/pkg/apperrors"
)

func serveError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		err     error
		status  int
		message string
	}{
		{apperrors.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
		{apperrors.ErrInvalidSeverity, http.StatusBadRequest, "Severity must be Minor or Major"},
		{apperrors.ErrEmailTaken, http.StatusBadRequest, "Email already registered"},
		{apperrors.ErrUsernameTaken, http.StatusBadRequest, "Username already taken"},
		{apperrors.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
		{apperrors.ErrUnauthorized, http.StatusUnauthorized, "Authentication required"},
		{apperrors.ErrPermissionDenied, http.StatusForbidden, "Permission denied"},
		{apperrors.ErrStudentNotFound, http.StatusNotFound, "Student not found"},
		{apperrors.ErrViolationNotFound, http.StatusNotFound, "Violation not found"},
		{apperrors.ErrStudentIDExists, http.StatusConflict, "Student ID already exists"},
		{apperrors.ErrStudentEmailExists, http.StatusConflict, "Student email already exists"},
		{errors.New("database exploded"), http.StatusInternalServerError, "Server error"},
	}

	for _, tc := range cases {
		w := serveError(t, tc.err)
		if w.Code != tc.status {
			t.Errorf("%v: status = %d, want %d", tc.err, w.Code, tc.status)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%v: bad body: %v", tc.err, err)
		}
		if body["message"] != tc.message {
			t.Errorf("%v: message = %q, want %q", tc.err, body["message"], tc.message)
		}
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := fmt.Errorf("loading violation: %w", apperrors.ErrViolationNotFound)
	w := serveError(t, wrapped)
	if w.Code != http.StatusNotFound {
		t.Errorf("wrapped sentinel status = %d, want 404", w.Code)
	}
}

func TestHandleAPIErrorCustomMessage(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrValidationFailed, "Year must be greater than 0")
	w := serveError(t, err)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] != "Year must be greater than 0" {
		t.Errorf("message = %q, want the attached custom message", body["message"])
	}
}

func TestHandleAPIErrorHidesInternals(t *testing.T) {
	w := serveError(t, errors.New("pq: connection refused host=10.0.0.5"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["message"] != "Server error" {
		t.Errorf("internal details leaked: %q", body["message"])
	}
}
