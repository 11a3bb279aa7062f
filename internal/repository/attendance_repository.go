package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studytrack/studytrack-backend/internal/model"
)

// AttendanceRepository handles attendance record data access.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

const attendanceColumns = `id, student_id, course, semester, subject, date, status, created_at, updated_at`

// List retrieves attendance records matching the filter, in insertion order.
func (r *AttendanceRepository) List(ctx context.Context, f model.AttendanceFilter) ([]model.AttendanceRecord, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE 1=1`
	var args []interface{}

	if f.StudentID != nil {
		args = append(args, *f.StudentID)
		query += ` AND student_id = $` + strconv.Itoa(len(args))
	}
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
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.AttendanceRecord
	for rows.Next() {
		var a model.AttendanceRecord
		if err := rows.Scan(&a.ID, &a.StudentID, &a.Course, &a.Semester, &a.Subject,
			&a.Date, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetByID retrieves an attendance record by ID.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int) (*model.AttendanceRecord, error) {
	a := &model.AttendanceRecord{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records WHERE id = $1`, id,
	).Scan(&a.ID, &a.StudentID, &a.Course, &a.Semester, &a.Subject,
		&a.Date, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new attendance record. Returns ErrDuplicate when a mark
// already exists for the same (student_id, subject, date).
func (r *AttendanceRepository) Create(ctx context.Context, a *model.AttendanceRecord) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO attendance_records (student_id, course, semester, subject, date, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		a.StudentID, a.Course, a.Semester, a.Subject, a.Date, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// UpdateStatus corrects the status of an attendance record. Returns
// ErrNotFound if the ID does not exist.
func (r *AttendanceRepository) UpdateStatus(ctx context.Context, id int, status model.AttendanceStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE attendance_records SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an attendance record. Returns ErrNotFound if the ID does not exist.
func (r *AttendanceRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
