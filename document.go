package wixbook

import (
	"context"
	"html"
	"strings"
	"time"
)

// Document is a reconstructed chapter.
type Document struct {
	ID          string    `json:"id"`
	WorkID      string    `json:"workId"`
	SourceURL   string    `json:"sourceUrl"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.WorkID == "" {
		return Errorf(EINVALID, "document work ID required")
	}
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

// HTML renders the document as a self-contained page. The title is
// repeated as the heading of a single content container, and the source
// URL is recorded as both canonical link and base so relative links in
// the content keep resolving against the origin.
func (d *Document) HTML() string {
	title := html.EscapeString(d.Title)
	origin := html.EscapeString(d.SourceURL)

	var b strings.Builder
	b.WriteString("<html><head><title>")
	b.WriteString(title)
	b.WriteString("</title>")
	if d.SourceURL != "" {
		b.WriteString(`<link rel="canonical" href="`)
		b.WriteString(origin)
		b.WriteString(`"><base href="`)
		b.WriteString(origin)
		b.WriteString(`">`)
	}
	b.WriteString("</head><body><div><h1>")
	b.WriteString(title)
	b.WriteString("</h1>")
	b.WriteString(d.Content)
	b.WriteString("</div></body></html>")
	return b.String()
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error

	// DeleteDocumentsByWork removes all documents for a work.
	DeleteDocumentsByWork(ctx context.Context, workID string) error
}

// SortOrder represents the sort order for document queries.
type SortOrder string

// SortOrder constants for DocumentFilter.
const (
	SortByFetchedAt SortOrder = "fetched_at"
	SortByPosition  SortOrder = "position"
)

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID        *string `json:"id"`
	WorkID    *string `json:"workId"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`

	SortBy SortOrder `json:"sortBy"`
}
