package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack-backend/internal/catalog"
	"github.com/studytrack/studytrack-backend/internal/response"
)

// CatalogHandler serves the fixed course layout used to drive cascading
// course and semester selectors.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// Courses godoc
// GET /api/v1/catalog/courses
func (h *CatalogHandler) Courses(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"courses": h.catalog.Courses()})
}

// Semesters godoc
// GET /api/v1/catalog/semesters?course=
// Returns the semester options {1..N} for the course.
func (h *CatalogHandler) Semesters(c *gin.Context) {
	course := c.Query("course")
	if course == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	semesters, ok := h.catalog.Semesters(course)
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrUnknownCourse)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"course":    course,
		"semesters": semesters,
	})
}
