package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/wixbook"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ wixbook.WorkService = (*WorkService)(nil)

// WorkService implements wixbook.WorkService using SQLite.
type WorkService struct {
	db *DB
}

// NewWorkService creates a new WorkService.
func NewWorkService(db *DB) *WorkService {
	return &WorkService{db: db}
}

const workColumns = "id, name, source_url, strategy, created_at, updated_at"

// CreateWork creates a new work. Names are unique.
func (s *WorkService) CreateWork(ctx context.Context, work *wixbook.Work) error {
	if err := work.Validate(); err != nil {
		return err
	}

	work.ID = uuid.New().String()
	now := time.Now().UTC().Truncate(time.Second)
	work.CreatedAt = now
	work.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO works (id, name, source_url, strategy, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, work.ID, work.Name, work.SourceURL, work.Strategy,
		work.CreatedAt.Format(time.RFC3339), work.UpdatedAt.Format(time.RFC3339))
	if isUniqueViolation(err) {
		return wixbook.Errorf(wixbook.EINVALID, "work %q already exists", work.Name)
	}
	return err
}

// FindWorkByID retrieves a work by ID.
func (s *WorkService) FindWorkByID(ctx context.Context, id string) (*wixbook.Work, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+workColumns+" FROM works WHERE id = ?", id)

	work, err := scanWork(row)
	if err == sql.ErrNoRows {
		return nil, wixbook.Errorf(wixbook.ENOTFOUND, "work not found")
	}
	if err != nil {
		return nil, err
	}
	return work, nil
}

// FindWorks retrieves works matching the filter, newest first.
func (s *WorkService) FindWorks(ctx context.Context, filter wixbook.WorkFilter) ([]*wixbook.Work, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + workColumns + " FROM works WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var works []*wixbook.Work
	for rows.Next() {
		work, err := scanWork(rows)
		if err != nil {
			return nil, err
		}
		works = append(works, work)
	}

	return works, rows.Err()
}

// UpdateWork updates an existing work.
func (s *WorkService) UpdateWork(ctx context.Context, id string, upd wixbook.WorkUpdate) (*wixbook.Work, error) {
	work, err := s.FindWorkByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		work.Name = *upd.Name
	}
	if upd.SourceURL != nil {
		work.SourceURL = *upd.SourceURL
	}
	if upd.Strategy != nil {
		work.Strategy = *upd.Strategy
	}

	if err := work.Validate(); err != nil {
		return nil, err
	}

	work.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE works
		SET name = ?, source_url = ?, strategy = ?, updated_at = ?
		WHERE id = ?
	`, work.Name, work.SourceURL, work.Strategy, work.UpdatedAt.Format(time.RFC3339), id)
	if isUniqueViolation(err) {
		return nil, wixbook.Errorf(wixbook.EINVALID, "work %q already exists", work.Name)
	}
	if err != nil {
		return nil, err
	}

	return work, nil
}

// DeleteWork permanently removes a work. Its documents are removed by
// the foreign key cascade.
func (s *WorkService) DeleteWork(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM works WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wixbook.Errorf(wixbook.ENOTFOUND, "work not found")
	}

	return nil
}

func scanWork(s rowScanner) (*wixbook.Work, error) {
	var work wixbook.Work
	var createdAt, updatedAt string

	if err := s.Scan(&work.ID, &work.Name, &work.SourceURL, &work.Strategy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if work.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if work.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &work, nil
}
