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

// TeacherHandler handles teacher profile CRUD endpoints.
type TeacherHandler struct {
	teacherService *service.TeacherService
}

// NewTeacherHandler creates a new TeacherHandler.
func NewTeacherHandler(teacherService *service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService}
}

// List godoc
// GET /api/v1/teachers?department=&course=
func (h *TeacherHandler) List(c *gin.Context) {
	filter := model.TeacherFilter{
		Department: c.Query("department"),
		Course:     c.Query("course"),
	}

	teachers, err := h.teacherService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teachers": teachers})
}

// Get godoc
// GET /api/v1/teachers/:id
func (h *TeacherHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	teacher, err := h.teacherService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teacher": teacher})
}

// Create godoc
// POST /api/v1/teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	var req model.CreateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher := &model.Teacher{
		Name:              req.Name,
		Email:             req.Email,
		Department:        req.Department,
		TeacherCode:       req.TeacherCode,
		AssignedCourses:   req.AssignedCourses,
		AssignedSemesters: req.AssignedSemesters,
	}
	if err := h.teacherService.Create(c.Request.Context(), teacher); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"teacher": teacher})
}

// Update godoc
// PUT /api/v1/teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	teacher := &model.Teacher{
		ID:                id,
		Name:              req.Name,
		Email:             req.Email,
		Department:        req.Department,
		TeacherCode:       req.TeacherCode,
		AssignedCourses:   req.AssignedCourses,
		AssignedSemesters: req.AssignedSemesters,
	}
	if err := h.teacherService.Update(c.Request.Context(), teacher); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"teacher": teacher})
}

// Delete godoc
// DELETE /api/v1/teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.teacherService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "teacher deleted successfully"})
}
