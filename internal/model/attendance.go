package model

import "time"

// AttendanceStatus marks a student present or absent for one session.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
)

// AttendanceRecord is one student's attendance mark for a dated session of
// a (course, semester, subject) scope.
type AttendanceRecord struct {
	ID        int              `json:"id"`
	StudentID int              `json:"student_id"`
	Course    string           `json:"course"`
	Semester  int              `json:"semester"`
	Subject   string           `json:"subject"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// AttendanceFilter restricts an attendance listing.
type AttendanceFilter struct {
	StudentID *int
	Course    string
	Semester  *int
	Subject   string
}

// CreateAttendanceRequest is the payload for recording attendance.
type CreateAttendanceRequest struct {
	StudentID int              `json:"student_id" binding:"required"`
	Course    string           `json:"course" binding:"required,max=50"`
	Semester  int              `json:"semester" binding:"required,min=1,max=12"`
	Subject   string           `json:"subject" binding:"required,max=150"`
	Date      time.Time        `json:"date" binding:"required"`
	Status    AttendanceStatus `json:"status" binding:"required,oneof=present absent"`
}

// UpdateAttendanceRequest is the payload for correcting an attendance mark.
type UpdateAttendanceRequest struct {
	Status AttendanceStatus `json:"status" binding:"required,oneof=present absent"`
}
