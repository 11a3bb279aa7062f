package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// ResultService handles grade record business logic. Submissions are
// upserts keyed on (student, course, semester, subject); the storage layer
// resolves create-vs-update atomically.
type ResultService struct {
	resultRepo *repository.ResultRepository
	log        zerolog.Logger
}

// NewResultService creates a new ResultService.
func NewResultService(resultRepo *repository.ResultRepository, log zerolog.Logger) *ResultService {
	return &ResultService{
		resultRepo: resultRepo,
		log:        log.With().Str("component", "result_service").Logger(),
	}
}

// List retrieves results matching the filter.
func (s *ResultService) List(ctx context.Context, f model.ResultFilter) ([]model.Result, error) {
	results, err := s.resultRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []model.Result{}
	}
	return results, nil
}

// GetByID retrieves a result by ID.
func (s *ResultService) GetByID(ctx context.Context, id int) (*model.Result, error) {
	return s.resultRepo.GetByID(ctx, id)
}

// Upsert creates or updates the grade record for the result's scope tuple.
func (s *ResultService) Upsert(ctx context.Context, res *model.Result) error {
	if res.ResultStatus == "" {
		res.ResultStatus = gradeStatus(res.Internal, res.External)
	}
	return s.resultRepo.Upsert(ctx, res)
}

// Update modifies a result's scores by ID.
func (s *ResultService) Update(ctx context.Context, res *model.Result) error {
	if res.ResultStatus == "" {
		res.ResultStatus = gradeStatus(res.Internal, res.External)
	}
	return s.resultRepo.Update(ctx, res)
}

// Delete removes a result.
func (s *ResultService) Delete(ctx context.Context, id int) error {
	return s.resultRepo.Delete(ctx, id)
}

// gradeStatus derives a pass/fail status when the submitter leaves it blank.
// Scores are on a 0-10 scale; 4.0 combined average is the pass mark.
func gradeStatus(internal, external float64) string {
	if (internal+external)/2 >= 4.0 {
		return "pass"
	}
	return "fail"
}
