package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/studytrack/studytrack-backend/internal/catalog"
	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/database"
	"github.com/studytrack/studytrack-backend/internal/handler"
	"github.com/studytrack/studytrack-backend/internal/logger"
	"github.com/studytrack/studytrack-backend/internal/repository"
	"github.com/studytrack/studytrack-backend/internal/router"
	"github.com/studytrack/studytrack-backend/internal/service"
	"github.com/studytrack/studytrack-backend/internal/validator"
	"github.com/studytrack/studytrack-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("Invalid configuration")
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting StudyTrack Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)
	resultRepo := repository.NewResultRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	courseCatalog := catalog.New(cfg.CourseSemesters)

	authService := service.NewAuthService(cfg)
	userService := service.NewUserService(userRepo, studentRepo, teacherRepo, authService, log)
	studentService := service.NewStudentService(studentRepo)
	teacherService := service.NewTeacherService(teacherRepo)
	subjectService := service.NewSubjectService(subjectRepo, log)
	assignmentService := service.NewAssignmentService(assignmentRepo)
	timetableService := service.NewTimetableService(timetableRepo)
	resultService := service.NewResultService(resultRepo, log)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	announcementService := service.NewAnnouncementService(announcementRepo)
	dashboardService := service.NewDashboardService(
		studentRepo, teacherRepo, subjectRepo,
		assignmentRepo, resultRepo, attendanceRepo, announcementRepo,
		rdb, cfg.DashboardCacheTTL, log,
	)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, authService, userService),
		Student:      handler.NewStudentHandler(studentService),
		Teacher:      handler.NewTeacherHandler(teacherService),
		Subject:      handler.NewSubjectHandler(subjectService),
		Assignment:   handler.NewAssignmentHandler(assignmentService),
		Timetable:    handler.NewTimetableHandler(timetableService),
		Result:       handler.NewResultHandler(resultService),
		Attendance:   handler.NewAttendanceHandler(attendanceService),
		Announcement: handler.NewAnnouncementHandler(announcementService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Catalog:      handler.NewCatalogHandler(courseCatalog),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	statsWorker := worker.NewStatsWorker(dashboardService, cfg.DashboardCacheTTL, log)
	go statsWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
