package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/studytrack/studytrack-backend/internal/config"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// Counter reports the size of one collection.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// AdminOverview aggregates entity counts for the admin dashboard.
type AdminOverview struct {
	Students      int       `json:"students"`
	Teachers      int       `json:"teachers"`
	Subjects      int       `json:"subjects"`
	Announcements int       `json:"announcements"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// TeacherOverview aggregates a teacher's own assignments and the latest
// announcements for the teacher dashboard.
type TeacherOverview struct {
	Teacher       *model.Teacher       `json:"teacher"`
	Assignments   []model.Assignment   `json:"assignments"`
	Announcements []model.Announcement `json:"announcements"`
}

// StudentOverview aggregates a student's results and attendance summary
// for the student dashboard.
type StudentOverview struct {
	Student         *model.Student       `json:"student"`
	Results         []model.Result       `json:"results"`
	PresentSessions int                  `json:"present_sessions"`
	AbsentSessions  int                  `json:"absent_sessions"`
	Announcements   []model.Announcement `json:"announcements"`
}

// DashboardService composes role-specific dashboard payloads. Admin counts
// are served from a redis cache bounded by the configured TTL and refreshed
// in the background.
type DashboardService struct {
	students      Counter
	teachers      Counter
	subjects      Counter
	announcements Counter

	studentRepo      *repository.StudentRepository
	teacherRepo      *repository.TeacherRepository
	assignmentRepo   *repository.AssignmentRepository
	resultRepo       *repository.ResultRepository
	attendanceRepo   *repository.AttendanceRepository
	announcementRepo *repository.AnnouncementRepository

	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	studentRepo *repository.StudentRepository,
	teacherRepo *repository.TeacherRepository,
	subjectRepo *repository.SubjectRepository,
	assignmentRepo *repository.AssignmentRepository,
	resultRepo *repository.ResultRepository,
	attendanceRepo *repository.AttendanceRepository,
	announcementRepo *repository.AnnouncementRepository,
	rdb *redis.Client,
	ttl time.Duration,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		students:         studentRepo,
		teachers:         teacherRepo,
		subjects:         subjectRepo,
		announcements:    announcementRepo,
		studentRepo:      studentRepo,
		teacherRepo:      teacherRepo,
		assignmentRepo:   assignmentRepo,
		resultRepo:       resultRepo,
		attendanceRepo:   attendanceRepo,
		announcementRepo: announcementRepo,
		rdb:              rdb,
		ttl:              ttl,
		log:              log.With().Str("component", "dashboard_service").Logger(),
	}
}

// NewDashboardServiceWithCounters wires explicit counters; used where the
// full repository set is unavailable.
func NewDashboardServiceWithCounters(students, teachers, subjects, announcements Counter, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		students:      students,
		teachers:      teachers,
		subjects:      subjects,
		announcements: announcements,
		rdb:           rdb,
		ttl:           ttl,
		log:           log.With().Str("component", "dashboard_service").Logger(),
	}
}

// AdminOverview returns the cached entity counts, recomputing them on a
// cache miss. A redis outage degrades to a direct computation.
func (s *DashboardService) AdminOverview(ctx context.Context) (*AdminOverview, error) {
	raw, err := s.rdb.Get(ctx, config.CacheKey.DashboardCountsKey()).Result()
	if err == nil {
		var cached AdminOverview
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("dashboard cache read failed")
	}

	return s.RefreshAdminOverview(ctx)
}

// RefreshAdminOverview recomputes the admin counts and writes them to the
// cache with the configured TTL.
func (s *DashboardService) RefreshAdminOverview(ctx context.Context) (*AdminOverview, error) {
	overview := &AdminOverview{GeneratedAt: time.Now().UTC()}

	var err error
	if overview.Students, err = s.students.Count(ctx); err != nil {
		return nil, err
	}
	if overview.Teachers, err = s.teachers.Count(ctx); err != nil {
		return nil, err
	}
	if overview.Subjects, err = s.subjects.Count(ctx); err != nil {
		return nil, err
	}
	if overview.Announcements, err = s.announcements.Count(ctx); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(overview)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, config.CacheKey.DashboardCountsKey(), payload, s.ttl).Err(); err != nil {
		s.log.Warn().Err(err).Msg("dashboard cache write failed")
	}

	return overview, nil
}

// TeacherOverview returns the teacher dashboard: the teacher's own
// assignments plus the five most recent announcements.
func (s *DashboardService) TeacherOverview(ctx context.Context, userID int) (*TeacherOverview, error) {
	teacher, err := s.teacherRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.List(ctx, model.AssignmentFilter{TeacherID: &teacher.ID})
	if err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []model.Assignment{}
	}

	announcements, err := s.announcementRepo.List(ctx, model.AnnouncementFilter{})
	if err != nil {
		return nil, err
	}
	if len(announcements) > 5 {
		announcements = announcements[:5]
	}
	if announcements == nil {
		announcements = []model.Announcement{}
	}

	return &TeacherOverview{
		Teacher:       teacher,
		Assignments:   assignments,
		Announcements: announcements,
	}, nil
}

// StudentOverview returns the student dashboard: the student's results,
// attendance tallies and the announcements scoped to their course/semester.
func (s *DashboardService) StudentOverview(ctx context.Context, userID int) (*StudentOverview, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	results, err := s.resultRepo.List(ctx, model.ResultFilter{StudentID: &student.ID})
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []model.Result{}
	}

	records, err := s.attendanceRepo.List(ctx, model.AttendanceFilter{StudentID: &student.ID})
	if err != nil {
		return nil, err
	}

	overview := &StudentOverview{Student: student, Results: results}
	for _, rec := range records {
		if rec.Status == model.AttendancePresent {
			overview.PresentSessions++
		} else {
			overview.AbsentSessions++
		}
	}

	announcements, err := s.announcementRepo.List(ctx, model.AnnouncementFilter{
		Course:   student.Course,
		Semester: &student.Semester,
	})
	if err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []model.Announcement{}
	}
	overview.Announcements = announcements

	return overview, nil
}
