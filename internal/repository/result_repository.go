package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studytrack/studytrack-backend/internal/model"
)

// ResultRepository handles grade record data access. Uniqueness of the
// (student_id, course, semester, subject) tuple is enforced by a compound
// unique index, so concurrent submissions for the same scope cannot produce
// duplicate rows.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

const resultColumns = `id, student_id, course, semester, subject, internal, external, result_status, created_at, updated_at`

// List retrieves results matching the filter, in insertion order.
func (r *ResultRepository) List(ctx context.Context, f model.ResultFilter) ([]model.Result, error) {
	query := `SELECT ` + resultColumns + ` FROM results WHERE 1=1`
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

	var results []model.Result
	for rows.Next() {
		var res model.Result
		if err := rows.Scan(&res.ID, &res.StudentID, &res.Course, &res.Semester, &res.Subject,
			&res.Internal, &res.External, &res.ResultStatus, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// GetByID retrieves a result by ID.
func (r *ResultRepository) GetByID(ctx context.Context, id int) (*model.Result, error) {
	res := &model.Result{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+resultColumns+` FROM results WHERE id = $1`, id,
	).Scan(&res.ID, &res.StudentID, &res.Course, &res.Semester, &res.Subject,
		&res.Internal, &res.External, &res.ResultStatus, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

// Upsert atomically creates the grade record for the result's
// (student_id, course, semester, subject) tuple, or updates the scores of
// the existing one. A single conditional statement, never read-then-branch.
func (r *ResultRepository) Upsert(ctx context.Context, res *model.Result) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO results (student_id, course, semester, subject, internal, external, result_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (student_id, course, semester, subject)
		 DO UPDATE SET internal = EXCLUDED.internal,
		               external = EXCLUDED.external,
		               result_status = EXCLUDED.result_status,
		               updated_at = NOW()
		 RETURNING id, created_at, updated_at`,
		res.StudentID, res.Course, res.Semester, res.Subject, res.Internal, res.External, res.ResultStatus,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
}

// Update modifies a result's scores by ID. Returns ErrNotFound if the ID
// does not exist.
func (r *ResultRepository) Update(ctx context.Context, res *model.Result) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE results SET internal = $1, external = $2, result_status = $3, updated_at = NOW()
		 WHERE id = $4`,
		res.Internal, res.External, res.ResultStatus, res.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a result. Returns ErrNotFound if the ID does not exist.
func (r *ResultRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM results WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
