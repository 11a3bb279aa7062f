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

// ResultHandler handles grade record endpoints. Submission is an upsert:
// posting the same (student, course, semester, subject) tuple twice updates
// the existing record rather than creating a duplicate.
type ResultHandler struct {
	resultService *service.ResultService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(resultService *service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// List godoc
// GET /api/v1/results?student_id=&course=&semester=&subject=
func (h *ResultHandler) List(c *gin.Context) {
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

	filter := model.ResultFilter{
		StudentID: studentID,
		Course:    c.Query("course"),
		Semester:  semester,
		Subject:   c.Query("subject"),
	}

	results, err := h.resultService.List(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// Get godoc
// GET /api/v1/results/:id
func (h *ResultHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	result, err := h.resultService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// Upsert godoc
// POST /api/v1/results
// Creates the record for the scope tuple or updates it in place.
func (h *ResultHandler) Upsert(c *gin.Context) {
	var req model.UpsertResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result := &model.Result{
		StudentID:    req.StudentID,
		Course:       req.Course,
		Semester:     req.Semester,
		Subject:      req.Subject,
		Internal:     req.Internal,
		External:     req.External,
		ResultStatus: req.ResultStatus,
	}
	if err := h.resultService.Upsert(c.Request.Context(), result); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// Update godoc
// PUT /api/v1/results/:id
func (h *ResultHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpsertResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result := &model.Result{
		ID:           id,
		StudentID:    req.StudentID,
		Course:       req.Course,
		Semester:     req.Semester,
		Subject:      req.Subject,
		Internal:     req.Internal,
		External:     req.External,
		ResultStatus: req.ResultStatus,
	}
	if err := h.resultService.Update(c.Request.Context(), result); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// Delete godoc
// DELETE /api/v1/results/:id
func (h *ResultHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.resultService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "result deleted successfully"})
}
