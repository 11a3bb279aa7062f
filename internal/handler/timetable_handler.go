package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
	"github.com/studytrack/studytrack-backend/internal/response"
	"github.com/studytrack/studytrack-backend/internal/service"
	"github.com/studytrack/studytrack-backend/internal/validator"
)

// TimetableHandler handles timetable slot CRUD endpoints.
type TimetableHandler struct {
	timetableService *service.TimetableService
}

// NewTimetableHandler creates a new TimetableHandler.
func NewTimetableHandler(timetableService *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableService: timetableService}
}

// List godoc
// GET /api/v1/timetables?course=&semester=&teacher_id=
// Entries come back in weekday then period order.
func (h *TimetableHandler) List(c *gin.Context) {
	semester, err := intQuery(c, "semester")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}
	teacherID, err := intQuery(c, "teacher_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	filter := model.TimetableFilter{
		Course:    c.Query("course"),
		Semester:  semester,
		TeacherID: teacherID,
	}

	entries, err := h.timetableService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"timetable": entries})
}

// Get godoc
// GET /api/v1/timetables/:id
func (h *TimetableHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	entry, err := h.timetableService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entry": entry})
}

// Create godoc
// POST /api/v1/timetables
func (h *TimetableHandler) Create(c *gin.Context) {
	var req model.CreateTimetableEntryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	entry := &model.TimetableEntry{
		Course:      req.Course,
		Semester:    req.Semester,
		Day:         req.Day,
		Period:      req.Period,
		Subject:     req.Subject,
		TeacherID:   req.TeacherID,
		TeacherName: req.TeacherName,
	}
	if err := h.timetableService.Create(c.Request.Context(), entry); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"entry": entry})
}

// Update godoc
// PUT /api/v1/timetables/:id
func (h *TimetableHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateTimetableEntryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	entry := &model.TimetableEntry{
		ID:          id,
		Course:      req.Course,
		Semester:    req.Semester,
		Day:         req.Day,
		Period:      req.Period,
		Subject:     req.Subject,
		TeacherID:   req.TeacherID,
		TeacherName: req.TeacherName,
	}
	if err := h.timetableService.Update(c.Request.Context(), entry); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"entry": entry})
}

// Delete godoc
// DELETE /api/v1/timetables/:id
func (h *TimetableHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.timetableService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "timetable entry deleted successfully"})
}
