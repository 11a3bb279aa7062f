package service

import (
	"context"

	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// AnnouncementService handles announcement business logic.
type AnnouncementService struct {
	announcementRepo *repository.AnnouncementRepository
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(announcementRepo *repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcementRepo: announcementRepo}
}

// List retrieves announcements matching the filter, newest first.
func (s *AnnouncementService) List(ctx context.Context, f model.AnnouncementFilter) ([]model.Announcement, error) {
	announcements, err := s.announcementRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []model.Announcement{}
	}
	return announcements, nil
}

// GetByID retrieves an announcement by ID.
func (s *AnnouncementService) GetByID(ctx context.Context, id int) (*model.Announcement, error) {
	return s.announcementRepo.GetByID(ctx, id)
}

// Create publishes an announcement.
func (s *AnnouncementService) Create(ctx context.Context, a *model.Announcement) error {
	return s.announcementRepo.Create(ctx, a)
}

// Update edits an announcement's title and message.
func (s *AnnouncementService) Update(ctx context.Context, a *model.Announcement) error {
	return s.announcementRepo.Update(ctx, a)
}

// Delete removes an announcement.
func (s *AnnouncementService) Delete(ctx context.Context, id int) error {
	return s.announcementRepo.Delete(ctx, id)
}
