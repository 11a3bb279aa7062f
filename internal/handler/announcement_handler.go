package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack-backend/internal/middleware"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
	"github.com/studytrack/studytrack-backend/internal/response"
	"github.com/studytrack/studytrack-backend/internal/service"
	"github.com/studytrack/studytrack-backend/internal/validator"
)

// AnnouncementHandler handles announcement endpoints.
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(announcementService *service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// List godoc
// GET /api/v1/announcements?course=&semester=&subject=
// Newest announcements come first.
func (h *AnnouncementHandler) List(c *gin.Context) {
	semester, err := intQuery(c, "semester")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	filter := model.AnnouncementFilter{
		Course:   c.Query("course"),
		Semester: semester,
		Subject:  c.Query("subject"),
	}

	announcements, err := h.announcementService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcements": announcements})
}

// Get godoc
// GET /api/v1/announcements/:id
func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	announcement, err := h.announcementService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcement": announcement})
}

// Create godoc
// POST /api/v1/announcements
// The author is taken from the authenticated identity, not the payload.
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req model.CreateAnnouncementRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	announcement := &model.Announcement{
		Title:    req.Title,
		Message:  req.Message,
		Course:   req.Course,
		Semester: req.Semester,
		Subject:  req.Subject,
	}
	if claims := middleware.GetClaims(c); claims != nil {
		announcement.AuthorID = &claims.UserID
	}

	if err := h.announcementService.Create(c.Request.Context(), announcement); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"announcement": announcement})
}

// Update godoc
// PUT /api/v1/announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAnnouncementRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	announcement := &model.Announcement{
		ID:      id,
		Title:   req.Title,
		Message: req.Message,
	}
	if err := h.announcementService.Update(c.Request.Context(), announcement); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"announcement": announcement})
}

// Delete godoc
// DELETE /api/v1/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.announcementService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "announcement deleted successfully"})
}
