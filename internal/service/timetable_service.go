package service

import (
	"context"

	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// TimetableService handles timetable slot business logic.
type TimetableService struct {
	timetableRepo *repository.TimetableRepository
}

// NewTimetableService creates a new TimetableService.
func NewTimetableService(timetableRepo *repository.TimetableRepository) *TimetableService {
	return &TimetableService{timetableRepo: timetableRepo}
}

// List retrieves timetable entries matching the filter.
func (s *TimetableService) List(ctx context.Context, f model.TimetableFilter) ([]model.TimetableEntry, error) {
	entries, err := s.timetableRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.TimetableEntry{}
	}
	return entries, nil
}

// GetByID retrieves a timetable entry by ID.
func (s *TimetableService) GetByID(ctx context.Context, id int) (*model.TimetableEntry, error) {
	return s.timetableRepo.GetByID(ctx, id)
}

// Create inserts a new timetable entry.
func (s *TimetableService) Create(ctx context.Context, e *model.TimetableEntry) error {
	return s.timetableRepo.Create(ctx, e)
}

// Update modifies a timetable entry.
func (s *TimetableService) Update(ctx context.Context, e *model.TimetableEntry) error {
	return s.timetableRepo.Update(ctx, e)
}

// Delete removes a timetable entry.
func (s *TimetableService) Delete(ctx context.Context, id int) error {
	return s.timetableRepo.Delete(ctx, id)
}
