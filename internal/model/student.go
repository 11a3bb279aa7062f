package model

import "time"

// Student is a student profile, optionally linked to a login identity.
type Student struct {
	ID         int       `json:"id"`
	UserID     *int      `json:"user_id,omitempty"`
	Name       string    `json:"name"`
	Enrollment string    `json:"enrollment"`
	Course     string    `json:"course"`
	Semester   int       `json:"semester"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// StudentFilter restricts a student listing. Empty fields are ignored;
// set fields combine conjunctively.
type StudentFilter struct {
	Course     string
	Semester   *int
	Enrollment string
}

// CreateStudentRequest is the payload for creating a student profile.
type CreateStudentRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Enrollment string `json:"enrollment" binding:"required,min=2,max=50"`
	Course     string `json:"course" binding:"required,max=50"`
	Semester   int    `json:"semester" binding:"required,min=1,max=12"`
}

// UpdateStudentRequest is the payload for updating a student profile.
type UpdateStudentRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Enrollment string `json:"enrollment" binding:"required,min=2,max=50"`
	Course     string `json:"course" binding:"required,max=50"`
	Semester   int    `json:"semester" binding:"required,min=1,max=12"`
}
