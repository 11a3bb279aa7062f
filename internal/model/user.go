package model

import "time"

// Role is the user's access role, fixed at signup.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// User is an identity record in the credential store.
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignupRequest is the payload for creating a new account.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Role     Role   `json:"role" binding:"required,oneof=admin teacher student"`

	// Role-specific profile fields, optional at signup.
	Enrollment string `json:"enrollment" binding:"omitempty,max=50"`
	Course     string `json:"course" binding:"omitempty,max=50"`
	Semester   int    `json:"semester" binding:"omitempty,min=1,max=12"`
	Department string `json:"department" binding:"omitempty,max=100"`
}

// LoginRequest is the payload for authentication. Role is optional; when
// present it must match the stored role or the login is rejected as
// invalid credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Role     Role   `json:"role" binding:"omitempty,oneof=admin teacher student"`
}

// LoginResponse is returned after successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
