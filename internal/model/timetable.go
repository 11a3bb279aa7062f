package model

import "time"

// Weekday values accepted for timetable entries.
var TimetableDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// TimetableEntry is one slot of a weekly timetable: a subject taught at a
// fixed (day, period) for a (course, semester) group.
type TimetableEntry struct {
	ID          int       `json:"id"`
	Course      string    `json:"course"`
	Semester    int       `json:"semester"`
	Day         string    `json:"day"`
	Period      int       `json:"period"`
	Subject     string    `json:"subject"`
	TeacherID   *int      `json:"teacher_id,omitempty"`
	TeacherName string    `json:"teacher_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TimetableFilter restricts a timetable listing: by the (course, semester)
// group, or by the teacher who takes the slot.
type TimetableFilter struct {
	Course    string
	Semester  *int
	TeacherID *int
}

// CreateTimetableEntryRequest is the payload for creating one timetable slot.
type CreateTimetableEntryRequest struct {
	Course      string `json:"course" binding:"required,max=50"`
	Semester    int    `json:"semester" binding:"required,min=1,max=12"`
	Day         string `json:"day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	Period      int    `json:"period" binding:"required,min=1,max=10"`
	Subject     string `json:"subject" binding:"required,max=150"`
	TeacherID   *int   `json:"teacher_id" binding:"omitempty"`
	TeacherName string `json:"teacher_name" binding:"omitempty,max=100"`
}

// UpdateTimetableEntryRequest is the payload for updating one timetable slot.
type UpdateTimetableEntryRequest struct {
	Course      string `json:"course" binding:"required,max=50"`
	Semester    int    `json:"semester" binding:"required,min=1,max=12"`
	Day         string `json:"day" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	Period      int    `json:"period" binding:"required,min=1,max=10"`
	Subject     string `json:"subject" binding:"required,max=150"`
	TeacherID   *int   `json:"teacher_id" binding:"omitempty"`
	TeacherName string `json:"teacher_name" binding:"omitempty,max=100"`
}
