package model

import "time"

// Subject is one taught subject scoped to a (course, semester) pair.
type Subject struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Course    string    `json:"course"`
	Semester  int       `json:"semester"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubjectFilter restricts a subject listing to a course and/or semester.
type SubjectFilter struct {
	Course   string
	Semester *int
}

// CreateSubjectRequest is the payload for creating a subject.
type CreateSubjectRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=150"`
	Code     string `json:"code" binding:"omitempty,max=50"`
	Course   string `json:"course" binding:"required,max=50"`
	Semester int    `json:"semester" binding:"required,min=1,max=12"`
}

// UpdateSubjectRequest is the payload for updating a subject.
type UpdateSubjectRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=150"`
	Code     string `json:"code" binding:"omitempty,max=50"`
	Course   string `json:"course" binding:"required,max=50"`
	Semester int    `json:"semester" binding:"required,min=1,max=12"`
}
