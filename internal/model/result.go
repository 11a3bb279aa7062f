package model

import "time"

// Result is a student's grade record for one (course, semester, subject)
// scope. The tuple (student_id, course, semester, subject) is unique;
// submitting again updates the existing record in place.
type Result struct {
	ID           int       `json:"id"`
	StudentID    int       `json:"student_id"`
	Course       string    `json:"course"`
	Semester     int       `json:"semester"`
	Subject      string    `json:"subject"`
	Internal     float64   `json:"internal"`
	External     float64   `json:"external"`
	ResultStatus string    `json:"result_status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ResultFilter restricts a result listing.
type ResultFilter struct {
	StudentID *int
	Course    string
	Semester  *int
	Subject   string
}

// UpsertResultRequest is the payload for creating or updating a grade record.
type UpsertResultRequest struct {
	StudentID    int     `json:"student_id" binding:"required"`
	Course       string  `json:"course" binding:"required,max=50"`
	Semester     int     `json:"semester" binding:"required,min=1,max=12"`
	Subject      string  `json:"subject" binding:"required,max=150"`
	Internal     float64 `json:"internal" binding:"min=0,max=10"`
	External     float64 `json:"external" binding:"min=0,max=10"`
	ResultStatus string  `json:"result_status" binding:"omitempty,max=50"`
}
