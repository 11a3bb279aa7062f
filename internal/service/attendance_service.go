package service

import (
	"context"

	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// AttendanceService handles attendance record business logic.
type AttendanceService struct {
	attendanceRepo *repository.AttendanceRepository
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(attendanceRepo *repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo}
}

// List retrieves attendance records matching the filter.
func (s *AttendanceService) List(ctx context.Context, f model.AttendanceFilter) ([]model.AttendanceRecord, error) {
	records, err := s.attendanceRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.AttendanceRecord{}
	}
	return records, nil
}

// GetByID retrieves an attendance record by ID.
func (s *AttendanceService) GetByID(ctx context.Context, id int) (*model.AttendanceRecord, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

// Create records an attendance mark.
func (s *AttendanceService) Create(ctx context.Context, a *model.AttendanceRecord) error {
	return s.attendanceRepo.Create(ctx, a)
}

// UpdateStatus corrects an attendance mark.
func (s *AttendanceService) UpdateStatus(ctx context.Context, id int, status model.AttendanceStatus) error {
	return s.attendanceRepo.UpdateStatus(ctx, id, status)
}

// Delete removes an attendance record.
func (s *AttendanceService) Delete(ctx context.Context, id int) error {
	return s.attendanceRepo.Delete(ctx, id)
}
