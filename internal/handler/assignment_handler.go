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

// AssignmentHandler handles assignment CRUD endpoints.
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// List godoc
// GET /api/v1/assignments?course=&semester=&subject=&teacher_id=
func (h *AssignmentHandler) List(c *gin.Context) {
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

	filter := model.AssignmentFilter{
		Course:    c.Query("course"),
		Semester:  semester,
		Subject:   c.Query("subject"),
		TeacherID: teacherID,
	}

	assignments, err := h.assignmentService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignments": assignments})
}

// Get godoc
// GET /api/v1/assignments/:id
func (h *AssignmentHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	assignment, err := h.assignmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignment": assignment})
}

// Create godoc
// POST /api/v1/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req model.CreateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	assignment := &model.Assignment{
		Course:      req.Course,
		Semester:    req.Semester,
		Subject:     req.Subject,
		Title:       req.Title,
		DueDate:     req.DueDate,
		TeacherID:   req.TeacherID,
		TeacherName: req.TeacherName,
	}
	if err := h.assignmentService.Create(c.Request.Context(), assignment); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"assignment": assignment})
}

// Update godoc
// PUT /api/v1/assignments/:id
func (h *AssignmentHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	assignment := &model.Assignment{
		ID:          id,
		Course:      req.Course,
		Semester:    req.Semester,
		Subject:     req.Subject,
		Title:       req.Title,
		DueDate:     req.DueDate,
		TeacherID:   req.TeacherID,
		TeacherName: req.TeacherName,
	}
	if err := h.assignmentService.Update(c.Request.Context(), assignment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"assignment": assignment})
}

// Delete godoc
// DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.assignmentService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "assignment deleted successfully"})
}
