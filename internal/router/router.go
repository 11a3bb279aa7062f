package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/handler"
	"github.com/studytrack/studytrack-backend/internal/middleware"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/response"
	"github.com/studytrack/studytrack-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Student      *handler.StudentHandler
	Teacher      *handler.TeacherHandler
	Subject      *handler.SubjectHandler
	Assignment   *handler.AssignmentHandler
	Timetable    *handler.TimetableHandler
	Result       *handler.ResultHandler
	Attendance   *handler.AttendanceHandler
	Announcement *handler.AnnouncementHandler
	Dashboard    *handler.DashboardHandler
	Catalog      *handler.CatalogHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// Reads require any authenticated role. Roster and scheduling writes are
// admin-only; results, attendance and announcements are writable by admins
// and teachers.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/signup", handlers.Auth.Signup)
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/logout", handlers.Auth.Logout)

		auth.GET("/me", middleware.RequireAuth(authService, cfg.CookieName), handlers.Auth.Me)
	}

	// ─── 2. Catalog Group (Authenticated Reads) ────────────────────────
	catalogAPI := router.Group("/api/v1/catalog")
	catalogAPI.Use(middleware.RequireAuth(authService, cfg.CookieName))
	{
		catalogAPI.GET("/courses", handlers.Catalog.Courses)
		catalogAPI.GET("/semesters", handlers.Catalog.Semesters)
	}

	// ─── 3. Records Group (JWT + Role Gating) ──────────────────────────
	api := router.Group("/api/v1")
	api.Use(middleware.RequireAuth(authService, cfg.CookieName))
	{
		adminOnly := middleware.RequireRoles(model.RoleAdmin)
		staffOnly := middleware.RequireRoles(model.RoleAdmin, model.RoleTeacher)

		// Student roster
		api.GET("/students", handlers.Student.List)
		api.GET("/students/:id", handlers.Student.Get)
		api.POST("/students", adminOnly, handlers.Student.Create)
		api.PUT("/students/:id", adminOnly, handlers.Student.Update)
		api.DELETE("/students/:id", adminOnly, handlers.Student.Delete)

		// Teacher roster
		api.GET("/teachers", handlers.Teacher.List)
		api.GET("/teachers/:id", handlers.Teacher.Get)
		api.POST("/teachers", adminOnly, handlers.Teacher.Create)
		api.PUT("/teachers/:id", adminOnly, handlers.Teacher.Update)
		api.DELETE("/teachers/:id", adminOnly, handlers.Teacher.Delete)

		// Subjects
		api.GET("/subjects", handlers.Subject.List)
		api.GET("/subjects/:id", handlers.Subject.Get)
		api.POST("/subjects", adminOnly, handlers.Subject.Create)
		api.PUT("/subjects/:id", adminOnly, handlers.Subject.Update)
		api.DELETE("/subjects/:id", adminOnly, handlers.Subject.Delete)

		// Assignments
		api.GET("/assignments", handlers.Assignment.List)
		api.GET("/assignments/:id", handlers.Assignment.Get)
		api.POST("/assignments", adminOnly, handlers.Assignment.Create)
		api.PUT("/assignments/:id", adminOnly, handlers.Assignment.Update)
		api.DELETE("/assignments/:id", adminOnly, handlers.Assignment.Delete)

		// Timetables
		api.GET("/timetables", handlers.Timetable.List)
		api.GET("/timetables/:id", handlers.Timetable.Get)
		api.POST("/timetables", adminOnly, handlers.Timetable.Create)
		api.PUT("/timetables/:id", adminOnly, handlers.Timetable.Update)
		api.DELETE("/timetables/:id", adminOnly, handlers.Timetable.Delete)

		// Results
		api.GET("/results", handlers.Result.List)
		api.GET("/results/:id", handlers.Result.Get)
		api.POST("/results", staffOnly, handlers.Result.Upsert)
		api.PUT("/results/:id", staffOnly, handlers.Result.Update)
		api.DELETE("/results/:id", staffOnly, handlers.Result.Delete)

		// Attendance
		api.GET("/attendance", handlers.Attendance.List)
		api.GET("/attendance/:id", handlers.Attendance.Get)
		api.POST("/attendance", staffOnly, handlers.Attendance.Create)
		api.PUT("/attendance/:id", staffOnly, handlers.Attendance.UpdateStatus)
		api.DELETE("/attendance/:id", staffOnly, handlers.Attendance.Delete)

		// Announcements
		api.GET("/announcements", handlers.Announcement.List)
		api.GET("/announcements/:id", handlers.Announcement.Get)
		api.POST("/announcements", staffOnly, handlers.Announcement.Create)
		api.PUT("/announcements/:id", staffOnly, handlers.Announcement.Update)
		api.DELETE("/announcements/:id", staffOnly, handlers.Announcement.Delete)

		// Dashboard
		api.GET("/dashboard", handlers.Dashboard.Overview)
	}

	return router
}
