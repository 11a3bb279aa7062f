package service

import (
	"errors"
	"testing"
	"time"

	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/model"
	"golang.org/x/crypto/bcrypt"
)

func testAuthService(expiry time.Duration) *AuthService {
	return NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  expiry,
		BcryptCost: bcrypt.MinCost,
	})
}

func TestIssueVerifyRoundtrip(t *testing.T) {
	auth := testAuthService(time.Hour)

	token, err := auth.Issue(42, model.RoleTeacher)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := auth.Verify(token)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != model.RoleTeacher {
		t.Errorf("Role = %q, want teacher", claims.Role)
	}
	if claims.ID == "" {
		t.Error("token ID is empty, want a unique JTI")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	auth := testAuthService(-time.Minute)

	token, err := auth.Issue(1, model.RoleStudent)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := auth.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(expired) error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := testAuthService(time.Hour)
	verifier := NewAuthService(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})

	token, err := issuer.Issue(1, model.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify(wrong secret) error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	auth := testAuthService(time.Hour)

	for _, tokenStr := range []string{"", "not-a-token", "aa.bb.cc"} {
		if _, err := auth.Verify(tokenStr); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", tokenStr, err)
		}
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	auth := testAuthService(time.Hour)

	hash, err := auth.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash equals plaintext")
	}

	if err := auth.CheckPassword(hash, "hunter22"); err != nil {
		t.Errorf("CheckPassword(correct) error = %v", err)
	}
	if err := auth.CheckPassword(hash, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("CheckPassword(wrong) error = %v, want ErrInvalidCredentials", err)
	}
}

func TestGradeStatus(t *testing.T) {
	tests := []struct {
		internal float64
		external float64
		want     string
	}{
		{8, 8, "pass"},
		{4, 4, "pass"},
		{5, 3, "pass"},
		{3, 4, "fail"},
		{0, 0, "fail"},
	}
	for _, tt := range tests {
		if got := gradeStatus(tt.internal, tt.external); got != tt.want {
			t.Errorf("gradeStatus(%v, %v) = %q, want %q", tt.internal, tt.external, got, tt.want)
		}
	}
}
