package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studytrack/studytrack-backend/internal/model"
)

// TeacherRepository handles teacher profile data access.
type TeacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

const teacherColumns = `id, user_id, name, email, department, teacher_code, assigned_courses, assigned_semesters, created_at, updated_at`

func scanTeacher(row pgx.Row) (*model.Teacher, error) {
	t := &model.Teacher{}
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.Email, &t.Department, &t.TeacherCode,
		&t.AssignedCourses, &t.AssignedSemesters, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// List retrieves teachers matching the filter, in insertion order.
// The course filter matches membership in the assigned_courses array.
func (r *TeacherRepository) List(ctx context.Context, f model.TeacherFilter) ([]model.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE 1=1`
	var args []interface{}

	if f.Department != "" {
		args = append(args, f.Department)
		query += ` AND department = $` + strconv.Itoa(len(args))
	}
	if f.Course != "" {
		args = append(args, f.Course)
		query += ` AND $` + strconv.Itoa(len(args)) + ` = ANY(assigned_courses)`
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Email, &t.Department, &t.TeacherCode,
			&t.AssignedCourses, &t.AssignedSemesters, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// GetByID retrieves a teacher by ID.
func (r *TeacherRepository) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	return scanTeacher(r.pool.QueryRow(ctx,
		`SELECT `+teacherColumns+` FROM teachers WHERE id = $1`, id))
}

// GetByUserID retrieves the teacher profile linked to a login identity.
func (r *TeacherRepository) GetByUserID(ctx context.Context, userID int) (*model.Teacher, error) {
	return scanTeacher(r.pool.QueryRow(ctx,
		`SELECT `+teacherColumns+` FROM teachers WHERE user_id = $1`, userID))
}

// Create inserts a new teacher profile.
func (r *TeacherRepository) Create(ctx context.Context, t *model.Teacher) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO teachers (user_id, name, email, department, teacher_code, assigned_courses, assigned_semesters)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		t.UserID, t.Name, t.Email, t.Department, t.TeacherCode, t.AssignedCourses, t.AssignedSemesters,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

// Update modifies a teacher profile. Returns ErrNotFound if the ID does not exist.
func (r *TeacherRepository) Update(ctx context.Context, t *model.Teacher) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE teachers SET name = $1, email = $2, department = $3, teacher_code = $4,
		        assigned_courses = $5, assigned_semesters = $6, updated_at = NOW()
		 WHERE id = $7`,
		t.Name, t.Email, t.Department, t.TeacherCode, t.AssignedCourses, t.AssignedSemesters, t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a teacher profile. Returns ErrNotFound if the ID does not exist.
func (r *TeacherRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of teacher profiles.
func (r *TeacherRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&n)
	return n, err
}
