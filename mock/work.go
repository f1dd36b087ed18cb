package mock

import (
	"context"

	"github.com/fwojciec/wixbook"
)

var _ wixbook.WorkService = (*WorkService)(nil)

// WorkService is a mock implementation of wixbook.WorkService.
type WorkService struct {
	CreateWorkFn   func(ctx context.Context, work *wixbook.Work) error
	FindWorkByIDFn func(ctx context.Context, id string) (*wixbook.Work, error)
	FindWorksFn    func(ctx context.Context, filter wixbook.WorkFilter) ([]*wixbook.Work, error)
	UpdateWorkFn   func(ctx context.Context, id string, upd wixbook.WorkUpdate) (*wixbook.Work, error)
	DeleteWorkFn   func(ctx context.Context, id string) error
}

func (s *WorkService) CreateWork(ctx context.Context, work *wixbook.Work) error {
	return s.CreateWorkFn(ctx, work)
}

func (s *WorkService) FindWorkByID(ctx context.Context, id string) (*wixbook.Work, error) {
	return s.FindWorkByIDFn(ctx, id)
}

func (s *WorkService) FindWorks(ctx context.Context, filter wixbook.WorkFilter) ([]*wixbook.Work, error) {
	return s.FindWorksFn(ctx, filter)
}

func (s *WorkService) UpdateWork(ctx context.Context, id string, upd wixbook.WorkUpdate) (*wixbook.Work, error) {
	return s.UpdateWorkFn(ctx, id, upd)
}

func (s *WorkService) DeleteWork(ctx context.Context, id string) error {
	return s.DeleteWorkFn(ctx, id)
}
