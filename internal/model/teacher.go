package model

import "time"

// Teacher is a teacher profile, optionally linked to a login identity.
type Teacher struct {
	ID                int       `json:"id"`
	UserID            *int      `json:"user_id,omitempty"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Department        string    `json:"department"`
	TeacherCode       string    `json:"teacher_code"`
	AssignedCourses   []string  `json:"assigned_courses"`
	AssignedSemesters []int     `json:"assigned_semesters"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TeacherFilter restricts a teacher listing. Empty fields are ignored;
// set fields combine conjunctively. Course matches against assigned courses.
type TeacherFilter struct {
	Department string
	Course     string
}

// CreateTeacherRequest is the payload for creating a teacher profile.
type CreateTeacherRequest struct {
	Name              string   `json:"name" binding:"required,min=2,max=100"`
	Email             string   `json:"email" binding:"required,email,max=255"`
	Department        string   `json:"department" binding:"required,max=100"`
	TeacherCode       string   `json:"teacher_code" binding:"required,min=2,max=50"`
	AssignedCourses   []string `json:"assigned_courses" binding:"omitempty,dive,max=50"`
	AssignedSemesters []int    `json:"assigned_semesters" binding:"omitempty,dive,min=1,max=12"`
}

// UpdateTeacherRequest is the payload for updating a teacher profile.
type UpdateTeacherRequest struct {
	Name              string   `json:"name" binding:"required,min=2,max=100"`
	Email             string   `json:"email" binding:"required,email,max=255"`
	Department        string   `json:"department" binding:"required,max=100"`
	TeacherCode       string   `json:"teacher_code" binding:"required,min=2,max=50"`
	AssignedCourses   []string `json:"assigned_courses" binding:"omitempty,dive,max=50"`
	AssignedSemesters []int    `json:"assigned_semesters" binding:"omitempty,dive,min=1,max=12"`
}
