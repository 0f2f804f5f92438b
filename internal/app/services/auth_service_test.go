package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mcardenas/campuswatch/internal/app/models/dto"
	"github.com/mcardenas/campuswatch/internal/pkg/apperrors"
	"github.com/mcardenas/campuswatch/internal/pkg/auth"
)

func newAuthServiceForTest(userRepo *mockUserRepo) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campuswatch-test",
	})
	return NewAuthService(userRepo, jwtService)
}

func TestRegisterHashesPassword(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := newAuthServiceForTest(userRepo)

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "mcardenas",
		Email:    "m@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if user.Password == "correct-horse" {
		t.Fatal("password stored in plaintext")
	}
	if !auth.CheckPassword(user.Password, "correct-horse") {
		t.Error("stored hash does not verify")
	}
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	svc := newAuthServiceForTest(newMockUserRepo())

	for _, email := range []string{"not-an-email", "a@b", "@example.com", ""} {
		_, err := svc.Register(context.Background(), dto.RegisterRequest{
			Username: "u",
			Email:    email,
			Password: "password123",
		})
		if !errors.Is(err, apperrors.ErrInvalidEmail) {
			t.Errorf("email %q: err = %v, want ErrInvalidEmail", email, err)
		}
	}
}

func TestRegisterDuplicates(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := newAuthServiceForTest(userRepo)

	first := dto.RegisterRequest{Username: "mcardenas", Email: "m@example.com", Password: "password123"}
	if _, err := svc.Register(context.Background(), first); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "other", Email: "m@example.com", Password: "password123",
	})
	if !errors.Is(err, apperrors.ErrEmailTaken) {
		t.Errorf("duplicate email err = %v, want ErrEmailTaken", err)
	}

	_, err = svc.Register(context.Background(), dto.RegisterRequest{
		Username: "mcardenas", Email: "m2@example.com", Password: "password123",
	})
	if !errors.Is(err, apperrors.ErrUsernameTaken) {
		t.Errorf("duplicate username err = %v, want ErrUsernameTaken", err)
	}

	if len(userRepo.users) != 1 {
		t.Errorf("%d users stored, want 1", len(userRepo.users))
	}
}

func TestLogin(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := newAuthServiceForTest(userRepo)

	if _, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "mcardenas", Email: "m@example.com", Password: "password123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "m@example.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if user.Username != "mcardenas" {
		t.Errorf("Username = %q", user.Username)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	userRepo := newMockUserRepo()
	svc := newAuthServiceForTest(userRepo)

	if _, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username: "mcardenas", Email: "m@example.com", Password: "password123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Wrong password and unknown email fail identically
	if _, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "m@example.com", Password: "wrong",
	}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}

	if _, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "nobody@example.com", Password: "password123",
	}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}
