package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/studytrack/studytrack-backend/internal/model"
)

// AnnouncementRepository handles announcement data access.
type AnnouncementRepository struct {
	pool *pgxpool.Pool
}

// NewAnnouncementRepository creates a new AnnouncementRepository.
func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{pool: pool}
}

const announcementColumns = `id, title, message, course, semester, subject, author_id, created_at, updated_at`

// List retrieves announcements matching the filter, newest first.
func (r *AnnouncementRepository) List(ctx context.Context, f model.AnnouncementFilter) ([]model.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements WHERE 1=1`
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
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []model.Announcement
	for rows.Next() {
		var a model.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Message, &a.Course, &a.Semester, &a.Subject,
			&a.AuthorID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

// GetByID retrieves an announcement by ID.
func (r *AnnouncementRepository) GetByID(ctx context.Context, id int) (*model.Announcement, error) {
	a := &model.Announcement{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id,
	).Scan(&a.ID, &a.Title, &a.Message, &a.Course, &a.Semester, &a.Subject,
		&a.AuthorID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new announcement.
func (r *AnnouncementRepository) Create(ctx context.Context, a *model.Announcement) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO announcements (title, message, course, semester, subject, author_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		a.Title, a.Message, a.Course, a.Semester, a.Subject, a.AuthorID,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// Update modifies an announcement's title and message. Returns ErrNotFound
// if the ID does not exist.
func (r *AnnouncementRepository) Update(ctx context.Context, a *model.Announcement) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE announcements SET title = $1, message = $2, updated_at = NOW() WHERE id = $3`,
		a.Title, a.Message, a.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an announcement. Returns ErrNotFound if the ID does not exist.
func (r *AnnouncementRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of announcements.
func (r *AnnouncementRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM announcements`).Scan(&n)
	return n, err
}
