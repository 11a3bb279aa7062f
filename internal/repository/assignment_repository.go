package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studytrack/studytrack-backend/internal/model"
)

// AssignmentRepository handles assignment data access.
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

const assignmentColumns = `id, course, semester, subject, title, due_date, teacher_id, teacher_name, created_at, updated_at`

// List retrieves assignments matching the filter, in insertion order.
func (r *AssignmentRepository) List(ctx context.Context, f model.AssignmentFilter) ([]model.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE 1=1`
	var args []interface{}

	if f.Course != "" {
		args = append(args, f.Course)
		query += ` AND course = $` + strconv.Itoa(len(args))
	}
	if f.Semester != nil {
		args = append(args, *f.Semester)
		query += ` AND semester = $` + strconv.Itoa(len(args))
	}
	if f.Subject != "" {
		args = append(args, f.Subject)
		query += ` AND subject = $` + strconv.Itoa(len(args))
	}
	if f.TeacherID != nil {
		args = append(args, *f.TeacherID)
		query += ` AND teacher_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []model.Assignment
	for rows.Next() {
		var a model.Assignment
		if err := rows.Scan(&a.ID, &a.Course, &a.Semester, &a.Subject, &a.Title, &a.DueDate,
			&a.TeacherID, &a.TeacherName, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// GetByID retrieves an assignment by ID.
func (r *AssignmentRepository) GetByID(ctx context.Context, id int) (*model.Assignment, error) {
	a := &model.Assignment{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE id = $1`, id,
	).Scan(&a.ID, &a.Course, &a.Semester, &a.Subject, &a.Title, &a.DueDate,
		&a.TeacherID, &a.TeacherName, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new assignment.
func (r *AssignmentRepository) Create(ctx context.Context, a *model.Assignment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO assignments (course, semester, subject, title, due_date, teacher_id, teacher_name)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		a.Course, a.Semester, a.Subject, a.Title, a.DueDate, a.TeacherID, a.TeacherName,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// Update modifies an assignment. Returns ErrNotFound if the ID does not exist.
func (r *AssignmentRepository) Update(ctx context.Context, a *model.Assignment) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE assignments SET course = $1, semester = $2, subject = $3, title = $4,
		        due_date = $5, teacher_id = $6, teacher_name = $7, updated_at = NOW()
		 WHERE id = $8`,
		a.Course, a.Semester, a.Subject, a.Title, a.DueDate, a.TeacherID, a.TeacherName, a.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an assignment. Returns ErrNotFound if the ID does not exist.
func (r *AssignmentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
