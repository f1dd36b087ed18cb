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
var _ wixbook.DocumentService = (*DocumentService)(nil)

// DocumentService implements wixbook.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

const documentColumns = "id, work_id, source_url, title, content, content_hash, position, fetched_at"

// CreateDocument creates a new document. A document with the same work
// and source URL is replaced, keeping one row per chapter.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *wixbook.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	if doc.FetchedAt.IsZero() {
		doc.FetchedAt = time.Now()
	}
	doc.FetchedAt = doc.FetchedAt.UTC().Truncate(time.Second)
	if doc.ContentHash == "" {
		doc.ContentHash = hashContent(doc.Content)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, work_id, source_url, title, content, content_hash, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (work_id, source_url) DO UPDATE SET
			id = excluded.id,
			title = excluded.title,
			content = excluded.content,
			content_hash = excluded.content_hash,
			position = excluded.position,
			fetched_at = excluded.fetched_at
	`, doc.ID, doc.WorkID, doc.SourceURL, doc.Title, doc.Content, doc.ContentHash,
		doc.Position, doc.FetchedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*wixbook.Document, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE id = ?", id)

	doc, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, wixbook.Errorf(wixbook.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter wixbook.DocumentFilter) ([]*wixbook.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.WorkID != nil {
		query.WriteString(" AND work_id = ?")
		args = append(args, *filter.WorkID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	switch filter.SortBy {
	case wixbook.SortByPosition:
		query.WriteString(" ORDER BY position ASC")
	default:
		query.WriteString(" ORDER BY fetched_at DESC, position ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*wixbook.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return wixbook.Errorf(wixbook.ENOTFOUND, "document not found")
	}

	return nil
}

// DeleteDocumentsByWork removes all documents for a work.
func (s *DocumentService) DeleteDocumentsByWork(ctx context.Context, workID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE work_id = ?", workID)
	return err
}

func scanDocument(s rowScanner) (*wixbook.Document, error) {
	var doc wixbook.Document
	var fetchedAt string

	if err := s.Scan(&doc.ID, &doc.WorkID, &doc.SourceURL, &doc.Title,
		&doc.Content, &doc.ContentHash, &doc.Position, &fetchedAt); err != nil {
		return nil, err
	}

	var err error
	if doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}
	return &doc, nil
}
