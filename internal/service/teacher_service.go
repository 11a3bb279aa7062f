package service

import (
	"context"

	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// TeacherService handles teacher profile business logic.
type TeacherService struct {
	teacherRepo *repository.TeacherRepository
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(teacherRepo *repository.TeacherRepository) *TeacherService {
	return &TeacherService{teacherRepo: teacherRepo}
}

// List retrieves teachers matching the filter.
func (s *TeacherService) List(ctx context.Context, f model.TeacherFilter) ([]model.Teacher, error) {
	teachers, err := s.teacherRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if teachers == nil {
		teachers = []model.Teacher{}
	}
	return teachers, nil
}

// GetByID retrieves a teacher by ID.
func (s *TeacherService) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

// GetByUserID retrieves the teacher profile linked to a login identity.
func (s *TeacherService) GetByUserID(ctx context.Context, userID int) (*model.Teacher, error) {
	return s.teacherRepo.GetByUserID(ctx, userID)
}

// Create inserts a new teacher profile.
func (s *TeacherService) Create(ctx context.Context, teacher *model.Teacher) error {
	return s.teacherRepo.Create(ctx, teacher)
}

// Update modifies a teacher profile.
func (s *TeacherService) Update(ctx context.Context, teacher *model.Teacher) error {
	return s.teacherRepo.Update(ctx, teacher)
}

// Delete removes a teacher profile.
func (s *TeacherService) Delete(ctx context.Context, id int) error {
	return s.teacherRepo.Delete(ctx, id)
}
