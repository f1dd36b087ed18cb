package wixbook

import (
	"context"
	"time"
)

// Work is a multi-chapter publication identified by its table of contents URL.
type Work struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SourceURL string    `json:"sourceUrl"`
	Strategy  string    `json:"strategy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the work contains invalid fields.
func (w *Work) Validate() error {
	if w.Name == "" {
		return Errorf(EINVALID, "work name required")
	}
	if w.SourceURL == "" {
		return Errorf(EINVALID, "work source URL required")
	}
	return nil
}

// WorkService represents a service for managing works.
type WorkService interface {
	// CreateWork creates a new work.
	CreateWork(ctx context.Context, work *Work) error

	// FindWorkByID retrieves a work by ID.
	// Returns ENOTFOUND if work does not exist.
	FindWorkByID(ctx context.Context, id string) (*Work, error)

	// FindWorks retrieves works matching the filter.
	FindWorks(ctx context.Context, filter WorkFilter) ([]*Work, error)

	// UpdateWork updates an existing work.
	// Returns ENOTFOUND if work does not exist.
	UpdateWork(ctx context.Context, id string, upd WorkUpdate) (*Work, error)

	// DeleteWork permanently removes a work and all associated documents.
	// Returns ENOTFOUND if work does not exist.
	DeleteWork(ctx context.Context, id string) error
}

// WorkFilter represents a filter for FindWorks.
type WorkFilter struct {
	ID        *string `json:"id"`
	Name      *string `json:"name"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// WorkUpdate represents fields that can be updated on a work.
type WorkUpdate struct {
	Name      *string `json:"name"`
	SourceURL *string `json:"sourceUrl"`
	Strategy  *string `json:"strategy"`
}
