package service

import (
	"context"

	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// AssignmentService handles assignment business logic.
type AssignmentService struct {
	assignmentRepo *repository.AssignmentRepository
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(assignmentRepo *repository.AssignmentRepository) *AssignmentService {
	return &AssignmentService{assignmentRepo: assignmentRepo}
}

// List retrieves assignments matching the filter.
func (s *AssignmentService) List(ctx context.Context, f model.AssignmentFilter) ([]model.Assignment, error) {
	assignments, err := s.assignmentRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []model.Assignment{}
	}
	return assignments, nil
}

// GetByID retrieves an assignment by ID.
func (s *AssignmentService) GetByID(ctx context.Context, id int) (*model.Assignment, error) {
	return s.assignmentRepo.GetByID(ctx, id)
}

// Create inserts a new assignment.
func (s *AssignmentService) Create(ctx context.Context, a *model.Assignment) error {
	return s.assignmentRepo.Create(ctx, a)
}

// Update modifies an assignment.
func (s *AssignmentService) Update(ctx context.Context, a *model.Assignment) error {
	return s.assignmentRepo.Update(ctx, a)
}

// Delete removes an assignment.
func (s *AssignmentService) Delete(ctx context.Context, id int) error {
	return s.assignmentRepo.Delete(ctx, id)
}
