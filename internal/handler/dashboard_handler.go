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
)

// DashboardHandler serves the role-specific dashboard payload.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Overview godoc
// GET /api/v1/dashboard
// Dispatches on the caller's role: admins get entity counts, teachers get
// their assignments and recent announcements, students get their results
// and attendance summary.
func (h *DashboardHandler) Overview(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	ctx := c.Request.Context()
	switch claims.Role {
	case model.RoleAdmin:
		overview, err := h.dashboardService.AdminOverview(ctx)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"dashboard": overview})
	case model.RoleTeacher:
		overview, err := h.dashboardService.TeacherOverview(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, http.StatusNotFound, response.ErrNotFound)
				return
			}
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"dashboard": overview})
	case model.RoleStudent:
		overview, err := h.dashboardService.StudentOverview(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Fail(c, http.StatusNotFound, response.ErrNotFound)
				return
			}
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"dashboard": overview})
	default:
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
	}
}
