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

// AttendanceHandler handles attendance record endpoints.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// List godoc
// GET /api/v1/attendance?student_id=&course=&semester=&subject=
func (h *AttendanceHandler) List(c *gin.Context) {
	studentID, err := intQuery(c, "student_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}
	semester, err := intQuery(c, "semester")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	filter := model.AttendanceFilter{
		StudentID: studentID,
		Course:    c.Query("course"),
		Semester:  semester,
		Subject:   c.Query("subject"),
	}

	records, err := h.attendanceService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"attendance": records})
}

// Get godoc
// GET /api/v1/attendance/:id
func (h *AttendanceHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	record, err := h.attendanceService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"record": record})
}

// Create godoc
// POST /api/v1/attendance
// Marking the same student twice for one dated session is a conflict.
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req model.CreateAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	record := &model.AttendanceRecord{
		StudentID: req.StudentID,
		Course:    req.Course,
		Semester:  req.Semester,
		Subject:   req.Subject,
		Date:      req.Date,
		Status:    req.Status,
	}
	if err := h.attendanceService.Create(c.Request.Context(), record); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"record": record})
}

// UpdateStatus godoc
// PUT /api/v1/attendance/:id
func (h *AttendanceHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.attendanceService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "attendance updated successfully"})
}

// Delete godoc
// DELETE /api/v1/attendance/:id
func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.attendanceService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "attendance record deleted successfully"})
}
