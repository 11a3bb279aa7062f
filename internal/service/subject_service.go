package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// SubjectService handles subject business logic.
type SubjectService struct {
	subjectRepo *repository.SubjectRepository
	log         zerolog.Logger
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(subjectRepo *repository.SubjectRepository, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		log:         log.With().Str("component", "subject_service").Logger(),
	}
}

// List retrieves subjects matching the filter.
func (s *SubjectService) List(ctx context.Context, f model.SubjectFilter) ([]model.Subject, error) {
	subjects, err := s.subjectRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if subjects == nil {
		subjects = []model.Subject{}
	}
	return subjects, nil
}

// GetByID retrieves a subject by ID.
func (s *SubjectService) GetByID(ctx context.Context, id int) (*model.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

// Create inserts a new subject.
func (s *SubjectService) Create(ctx context.Context, sub *model.Subject) error {
	return s.subjectRepo.Create(ctx, sub)
}

// Update modifies a subject.
func (s *SubjectService) Update(ctx context.Context, sub *model.Subject) error {
	return s.subjectRepo.Update(ctx, sub)
}

// Delete removes a subject.
func (s *SubjectService) Delete(ctx context.Context, id int) error {
	return s.subjectRepo.Delete(ctx, id)
}
