package model

import "time"

// Announcement is a notice published to a (course, semester, subject) scope.
// Listings return newest first.
type Announcement struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Course    string    `json:"course"`
	Semester  int       `json:"semester"`
	Subject   string    `json:"subject"`
	AuthorID  *int      `json:"author_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AnnouncementFilter restricts an announcement listing.
type AnnouncementFilter struct {
	Course   string
	Semester *int
	Subject  string
}

// CreateAnnouncementRequest is the payload for publishing an announcement.
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required,min=2,max=200"`
	Message  string `json:"message" binding:"required,min=2"`
	Course   string `json:"course" binding:"required,max=50"`
	Semester int    `json:"semester" binding:"required,min=1,max=12"`
	Subject  string `json:"subject" binding:"omitempty,max=150"`
}

// UpdateAnnouncementRequest is the payload for editing an announcement.
type UpdateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required,min=2,max=200"`
	Message string `json:"message" binding:"required,min=2"`
}
