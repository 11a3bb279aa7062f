package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/studytrack/studytrack-backend/internal/model"
	"github.com/studytrack/studytrack-backend/internal/repository"
)

// UserService handles identity creation and lookup. The role is written
// once at signup and no operation here (or anywhere else) changes it.
type UserService struct {
	userRepo    *repository.UserRepository
	studentRepo *repository.StudentRepository
	teacherRepo *repository.TeacherRepository
	auth        *AuthService
	log         zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userRepo *repository.UserRepository,
	studentRepo *repository.StudentRepository,
	teacherRepo *repository.TeacherRepository,
	auth *AuthService,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		auth:        auth,
		log:         log.With().Str("component", "user_service").Logger(),
	}
}

// Signup creates an identity and, for student and teacher roles, the linked
// profile row. Returns repository.ErrDuplicateEmail when the email is taken.
func (s *UserService) Signup(ctx context.Context, req *model.SignupRequest) (*model.User, error) {
	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	switch req.Role {
	case model.RoleStudent:
		student := &model.Student{
			UserID:     &user.ID,
			Name:       req.Name,
			Enrollment: req.Enrollment,
			Course:     req.Course,
			Semester:   req.Semester,
		}
		if student.Semester == 0 {
			student.Semester = 1
		}
		if err := s.studentRepo.Create(ctx, student); err != nil {
			s.log.Error().Err(err).Int("user_id", user.ID).Msg("student profile creation failed")
			return nil, err
		}
	case model.RoleTeacher:
		teacher := &model.Teacher{
			UserID:      &user.ID,
			Name:        req.Name,
			Email:       req.Email,
			Department:  req.Department,
			TeacherCode: req.Enrollment,
		}
		if err := s.teacherRepo.Create(ctx, teacher); err != nil {
			s.log.Error().Err(err).Int("user_id", user.ID).Msg("teacher profile creation failed")
			return nil, err
		}
	}

	return user, nil
}

// Authenticate verifies an email/password pair and, when the request names
// a role, that the stored role matches it. Any mismatch reports
// ErrInvalidCredentials without revealing which check failed.
func (s *UserService) Authenticate(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if req.Role != "" && req.Role != user.Role {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID retrieves an identity by ID.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
