package service

import (
	"context"

	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// StudentService handles student profile business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// List retrieves students matching the filter.
func (s *StudentService) List(ctx context.Context, f model.StudentFilter) ([]model.Student, error) {
	students, err := s.studentRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// GetByUserID retrieves the student profile linked to a login identity.
func (s *StudentService) GetByUserID(ctx context.Context, userID int) (*model.Student, error) {
	return s.studentRepo.GetByUserID(ctx, userID)
}

// Create inserts a new student profile.
func (s *StudentService) Create(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Create(ctx, student)
}

// Update modifies a student profile.
func (s *StudentService) Update(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Update(ctx, student)
}

// Delete removes a student profile.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.studentRepo.Delete(ctx, id)
}
