package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studytrack/studytrack-backend/internal/model"
)

// TimetableRepository handles timetable slot data access.
type TimetableRepository struct {
	pool *pgxpool.Pool
}

// NewTimetableRepository creates a new TimetableRepository.
func NewTimetableRepository(pool *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{pool: pool}
}

const timetableColumns = `id, course, semester, day, period, subject, teacher_id, teacher_name, created_at, updated_at`

// List retrieves timetable entries matching the filter, ordered by day then period.
func (r *TimetableRepository) List(ctx context.Context, f model.TimetableFilter) ([]model.TimetableEntry, error) {
	query := `SELECT ` + timetableColumns + ` FROM timetable_entries WHERE 1=1`
	var args []interface{}

	if f.Course != "" {
		args = append(args, f.Course)
		query += ` AND course = $` + strconv.Itoa(len(args))
	}
	if f.Semester != nil {
		args = append(args, *f.Semester)
		query += ` AND semester = $` + strconv.Itoa(len(args))
	}
	if f.TeacherID != nil {
		args = append(args, *f.TeacherID)
		query += ` AND teacher_id = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY array_position($` + strconv.Itoa(len(args)+1) + `::text[], day), period`
	args = append(args, model.TimetableDays)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.TimetableEntry
	for rows.Next() {
		var e model.TimetableEntry
		if err := rows.Scan(&e.ID, &e.Course, &e.Semester, &e.Day, &e.Period, &e.Subject,
			&e.TeacherID, &e.TeacherName, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByID retrieves a timetable entry by ID.
func (r *TimetableRepository) GetByID(ctx context.Context, id int) (*model.TimetableEntry, error) {
	e := &model.TimetableEntry{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+timetableColumns+` FROM timetable_entries WHERE id = $1`, id,
	).Scan(&e.ID, &e.Course, &e.Semester, &e.Day, &e.Period, &e.Subject,
		&e.TeacherID, &e.TeacherName, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Create inserts a new timetable entry. Each slot is an independent write;
// saving a full grid issues one Create per slot with no transaction spanning
// them.
func (r *TimetableRepository) Create(ctx context.Context, e *model.TimetableEntry) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO timetable_entries (course, semester, day, period, subject, teacher_id, teacher_name)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		e.Course, e.Semester, e.Day, e.Period, e.Subject, e.TeacherID, e.TeacherName,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// Update modifies a timetable entry. Returns ErrNotFound if the ID does not exist.
func (r *TimetableRepository) Update(ctx context.Context, e *model.TimetableEntry) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE timetable_entries SET course = $1, semester = $2, day = $3, period = $4,
		        subject = $5, teacher_id = $6, teacher_name = $7, updated_at = NOW()
		 WHERE id = $8`,
		e.Course, e.Semester, e.Day, e.Period, e.Subject, e.TeacherID, e.TeacherName, e.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a timetable entry. Returns ErrNotFound if the ID does not exist.
func (r *TimetableRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM timetable_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
