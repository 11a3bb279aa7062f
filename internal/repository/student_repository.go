package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studytrack/studytrack-backend/internal/model"
)

// StudentRepository handles student profile data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `id, user_id, name, enrollment, course, semester, created_at, updated_at`

func scanStudent(row pgx.Row) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Enrollment, &s.Course, &s.Semester, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// List retrieves students matching the filter, in insertion order.
func (r *StudentRepository) List(ctx context.Context, f model.StudentFilter) ([]model.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE 1=1`
	var args []interface{}

	if f.Course != "" {
		args = append(args, f.Course)
		query += ` AND course = $` + strconv.Itoa(len(args))
	}
	if f.Semester != nil {
		args = append(args, *f.Semester)
		query += ` AND semester = $` + strconv.Itoa(len(args))
	}
	if f.Enrollment != "" {
		args = append(args, f.Enrollment)
		query += ` AND enrollment = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Enrollment, &s.Course, &s.Semester, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
}

// GetByUserID retrieves the student profile linked to a login identity.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE user_id = $1`, userID))
}

// Create inserts a new student profile.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO students (user_id, name, enrollment, course, semester)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.UserID, s.Name, s.Enrollment, s.Course, s.Semester,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Update modifies a student profile. Returns ErrNotFound if the ID does not exist.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET name = $1, enrollment = $2, course = $3, semester = $4, updated_at = NOW()
		 WHERE id = $5`,
		s.Name, s.Enrollment, s.Course, s.Semester, s.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a student profile. Returns ErrNotFound if the ID does not exist.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of student profiles.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&n)
	return n, err
}
