package model

import "time"

// Assignment is a task published for a (course, semester, subject) scope,
// owned by a teacher.
type Assignment struct {
	ID          int        `json:"id"`
	Course      string     `json:"course"`
	Semester    int        `json:"semester"`
	Subject     string     `json:"subject"`
	Title       string     `json:"title"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	TeacherID   *int       `json:"teacher_id,omitempty"`
	TeacherName string     `json:"teacher_name"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// AssignmentFilter restricts an assignment listing.
type AssignmentFilter struct {
	Course    string
	Semester  *int
	Subject   string
	TeacherID *int
}

// CreateAssignmentRequest is the payload for creating an assignment.
type CreateAssignmentRequest struct {
	Course      string     `json:"course" binding:"required,max=50"`
	Semester    int        `json:"semester" binding:"required,min=1,max=12"`
	Subject     string     `json:"subject" binding:"required,max=150"`
	Title       string     `json:"title" binding:"required,min=2,max=200"`
	DueDate     *time.Time `json:"due_date" binding:"omitempty"`
	TeacherID   *int       `json:"teacher_id" binding:"omitempty"`
	TeacherName string     `json:"teacher_name" binding:"omitempty,max=100"`
}

// UpdateAssignmentRequest is the payload for updating an assignment.
type UpdateAssignmentRequest struct {
	Course      string     `json:"course" binding:"required,max=50"`
	Semester    int        `json:"semester" binding:"required,min=1,max=12"`
	Subject     string     `json:"subject" binding:"required,max=150"`
	Title       string     `json:"title" binding:"required,min=2,max=200"`
	DueDate     *time.Time `json:"due_date" binding:"omitempty"`
	TeacherID   *int       `json:"teacher_id" binding:"omitempty"`
	TeacherName string     `json:"teacher_name" binding:"omitempty,max=100"`
}
