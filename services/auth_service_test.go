package services

import (
	"errors"
	"testing"
	"time"

	"github.com/VinitO1/Food-Order-Catering/pkg/apperr"
	"github.com/VinitO1/Food-Order-Catering/repository"
)

func newAuthService(t *testing.T) *AuthService {
	db := setupTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Jamie@Example.com", "hunter22", "Jamie", "Lee", "604-555-0101")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "jamie@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.Password == "hunter22" {
		t.Error("password stored in plaintext")
	}
	if user.Role != "customer" {
		t.Errorf("role = %q, want customer", user.Role)
	}

	token, logged, err := svc.Login("jamie@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Error("empty token")
	}
	if logged.ID != user.ID {
		t.Errorf("logged in as %d, registered %d", logged.ID, user.ID)
	}

	if _, _, err := svc.Login("jamie@example.com", "wrong"); !errors.Is(err, apperr.ErrAuthenticationRequired) {
		t.Errorf("bad password: err = %v, want ErrAuthenticationRequired", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register("dup@example.com", "hunter22", "", "", ""); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register("dup@example.com", "hunter22", "", "", "")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("duplicate: err = %v, want validation error", err)
	}
}
