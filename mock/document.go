package mock

import (
	"context"

	"github.com/fwojciec/wixbook"
)

var (
	_ wixbook.DocumentService = (*DocumentService)(nil)
	_ wixbook.DocumentStore   = (*DocumentStore)(nil)
)

// DocumentService is a mock implementation of wixbook.DocumentService.
type DocumentService struct {
	CreateDocumentFn        func(ctx context.Context, doc *wixbook.Document) error
	FindDocumentByIDFn      func(ctx context.Context, id string) (*wixbook.Document, error)
	FindDocumentsFn         func(ctx context.Context, filter wixbook.DocumentFilter) ([]*wixbook.Document, error)
	DeleteDocumentFn        func(ctx context.Context, id string) error
	DeleteDocumentsByWorkFn func(ctx context.Context, workID string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *wixbook.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*wixbook.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter wixbook.DocumentFilter) ([]*wixbook.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}

func (s *DocumentService) DeleteDocumentsByWork(ctx context.Context, workID string) error {
	return s.DeleteDocumentsByWorkFn(ctx, workID)
}

// DocumentStore is a mock implementation of wixbook.DocumentStore.
type DocumentStore struct {
	SaveFn   func(ctx context.Context, doc *wixbook.Document) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *DocumentStore) Save(ctx context.Context, doc *wixbook.Document) error {
	return s.SaveFn(ctx, doc)
}

func (s *DocumentStore) Commit() error {
	return s.CommitFn()
}

func (s *DocumentStore) Abort() error {
	return s.AbortFn()
}
